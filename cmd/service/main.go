// @title        Site CMS API
// @version      1.0
// @description  頁面內容、部落格、聊天與帳號管理的後端 API 文件
// @host         localhost:5000
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Bearer <access_token>
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("command failed", "error", err)
		exitFunc(1)
	}
}
