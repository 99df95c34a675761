// File: internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultAdminPIN 為建立/刪除管理員時使用的共用 PIN。
// 這是低保證等級的閘門，不是密碼學控制。
// 必須與 Config.AdminPIN 的 envDefault 相同
const DefaultAdminPIN = "2312"

// Config 由環境變數載入的服務設定
type Config struct {
	DatabaseURL string   `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string   `env:"JWT_SECRET_KEY,required,notEmpty"`
	ServerAddr  string   `env:"SERVER_ADDR" envDefault:":5000"`
	AdminPIN    string   `env:"ADMIN_PIN" envDefault:"2312"`
	WorkerCount int      `env:"WORKER_COUNT" envDefault:"4"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	Debug       bool     `env:"DEBUG" envDefault:"false"`

	// Redis 為選用，只用於健康檢查
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// UseRedis 是否設定了 Redis
func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// SlogLevel 將 LogLevel 轉成 slog.Level，無法辨識時回傳 Info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var loadDotenv = func() error { return godotenv.Load() }

// Load 讀取 .env（若存在）後解析環境變數
func Load() (*Config, error) {
	// .env 不存在是正常情況
	_ = loadDotenv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.AdminPIN == "" {
		return nil, fmt.Errorf("ADMIN_PIN 不可為空")
	}
	return cfg, nil
}
