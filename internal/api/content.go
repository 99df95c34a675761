package api

import "time"

// swagger:model api.PageResponse
type PageResponse struct {
	Title       string `json:"title" example:"Home Page"`
	Description string `json:"description" example:"Default home content."`
}

// UpdatePageRequest 省略的欄位保留原值
// swagger:model api.UpdatePageRequest
type UpdatePageRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100" example:"Welcome"`
	Description *string `json:"description" example:"Fish & Chips"`
}

// swagger:model api.CreateBlogRequest
type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required,max=100" example:"Release notes"`
	Content string `json:"content" validate:"required" example:"We shipped."`
}

// swagger:model api.BlogResponse
type BlogResponse struct {
	Title      string    `json:"title" example:"Release notes"`
	Content    string    `json:"content" example:"We shipped."`
	DatePosted time.Time `json:"date_posted" example:"2025-05-01T15:04:05Z"`
}
