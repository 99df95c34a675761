package store

import (
	"context"
	"fmt"
	"log/slog"

	"sitecms/internal/database"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPageSlugs 啟動時若不存在就建立的頁面
var DefaultPageSlugs = []string{"home", "products", "about", "contact", "careers"}

// DisplayName 將 slug 轉成首字大寫的顯示名稱，例如 "home" -> "Home"
func DisplayName(slug string) string {
	// Caser 有狀態，不可跨 goroutine 共用
	return cases.Title(language.English).String(slug)
}

// SeedPages 為每個預設 slug 建立預設內容，已存在的不會被覆寫
func SeedPages(ctx context.Context, db database.DB) error {
	for _, slug := range DefaultPageSlugs {
		tag, err := db.Exec(ctx,
			`INSERT INTO page_contents (page, title, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (page) DO NOTHING`,
			slug,
			DisplayName(slug)+" Page",
			fmt.Sprintf("Default %s content.", slug),
		)
		if err != nil {
			return fmt.Errorf("SeedPages %s: %w", slug, err)
		}
		if tag.RowsAffected() > 0 {
			slog.Info("seeded page content", "page", slug)
		}
	}
	return nil
}
