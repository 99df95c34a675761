package service

import (
	"context"
	"strings"

	"sitecms/internal/database"
	"sitecms/internal/model"
	"sitecms/internal/store"
)

// ContentService 頁面內容與部落格
// 標題、內文與描述都原樣儲存；HTML 跳脫交給呈現端
type ContentService struct {
	db database.DB
}

func NewContentService(db database.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) GetPage(ctx context.Context, slug string) (*model.PageContent, error) {
	p, err := store.GetPage(ctx, s.db, slug)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, newError(ErrNotFound, "Page not found")
		}
		return nil, err
	}
	return p, nil
}

// UpdatePage 僅管理員可用；nil 欄位保留原值
func (s *ContentService) UpdatePage(ctx context.Context, slug string, title, description *string, actingUserID int) (*model.PageContent, error) {
	if _, err := actingAdmin(ctx, s.db, actingUserID); err != nil {
		return nil, err
	}

	p, err := store.UpdatePage(ctx, s.db, slug, title, description)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, newError(ErrNotFound, "Page not found")
		}
		return nil, err
	}
	return p, nil
}

// ListBlogs 由新到舊；沒有文章時回傳空切片
func (s *ContentService) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	return store.ListBlogs(ctx, s.db)
}

// AddBlog 任何已登入且仍存在的使用者都可發文，時間由伺服器指定
func (s *ContentService) AddBlog(ctx context.Context, title, content string, actingUserID int) (*model.Blog, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, newError(ErrValidation, "title and content are required")
	}
	if _, err := actingUser(ctx, s.db, actingUserID); err != nil {
		return nil, err
	}

	b := &model.Blog{
		Title:      title,
		Content:    content,
		DatePosted: timeNow(),
	}
	if err := store.CreateBlog(ctx, s.db, b); err != nil {
		return nil, err
	}
	return b, nil
}
