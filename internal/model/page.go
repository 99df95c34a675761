// File: internal/model/page.go
package model

// PageContent 以固定的 slug 為鍵，啟動時 seed，之後只會被更新
type PageContent struct {
	ID          int    `db:"id" json:"-"`
	Page        string `db:"page" json:"page"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
}
