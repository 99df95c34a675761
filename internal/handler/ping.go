package handler

import (
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/cache"
	"sitecms/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫（以及有設定時的 Redis）連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		if err := db.Ping(reqCtx); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "database unhealthy"})
		}
		// 沒有設定 Redis 時跳過
		if c != nil {
			if err := cache.Probe(reqCtx, c); err != nil {
				return ctx.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "cache unhealthy"})
			}
		}
		return ctx.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
