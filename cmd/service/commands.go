package main

import (
	"fmt"
	"log/slog"

	"sitecms/internal/config"
	"sitecms/internal/database"

	"github.com/spf13/cobra"
)

var (
	loadConfig      = config.Load
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitecms",
		Short:         "頁面內容、部落格與聊天的 HTTP 服務",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不帶子命令時等同 serve
		RunE: serveRunE,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "執行 migration、建立預設頁面並啟動 HTTP 服務",
		Args:  cobra.NoArgs,
		RunE:  serveRunE,
	}
}

func serveRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg))
	return run(cmd.Context(), cfg)
}

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "管理資料庫 schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "套用所有尚未執行的 migration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cfg))
			if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("Migration 執行失敗: %w", err)
			}
			slog.Info("migrations applied")
			return nil
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "退回所有 migration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cfg))
			if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("RollbackAll 失敗: %w", err)
			}
			slog.Info("migrations rolled back")
			return nil
		},
	})
	return migrateCmd
}
