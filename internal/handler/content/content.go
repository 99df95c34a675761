package content

import (
	"context"
	"fmt"
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/handler"
	"sitecms/internal/model"
	"sitecms/internal/store"

	"github.com/labstack/echo/v4"
)

// ContentService 頁面與部落格
type ContentService interface {
	GetPage(ctx context.Context, slug string) (*model.PageContent, error)
	UpdatePage(ctx context.Context, slug string, title, description *string, actingUserID int) (*model.PageContent, error)
	ListBlogs(ctx context.Context) ([]model.Blog, error)
	AddBlog(ctx context.Context, title, content string, actingUserID int) (*model.Blog, error)
}

// GetPageHandler 取得頁面標題與描述
// @Summary     取得頁面內容
// @Tags        pages
// @Produce     json
// @Param       slug path     string true "頁面代號 (home, about, ...)"
// @Success     200  {object} api.PageResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /{slug} [get]
func GetPageHandler(svc ContentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := svc.GetPage(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.PageResponse{Title: p.Title, Description: p.Description})
	}
}

// UpdatePageHandler 更新頁面（僅管理員）
// @Summary     更新頁面內容
// @Description 省略的欄位保留原值；內容原樣保存
// @Tags        pages
// @Accept      json
// @Produce     json
// @Param       slug path     string                true "頁面代號"
// @Param       body body     api.UpdatePageRequest true "新的標題或描述"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /update/{slug} [put]
func UpdatePageHandler(svc ContentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.ActingUserID(c)
		if err != nil {
			return err
		}
		var req api.UpdatePageRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		slug := c.Param("slug")
		if _, err := svc.UpdatePage(c.Request().Context(), slug, req.Title, req.Description, userID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{
			Message: fmt.Sprintf("%s page updated.", store.DisplayName(slug)),
		})
	}
}

// ListBlogsHandler 列出所有文章，新的在前
// @Summary     列出部落格文章
// @Tags        blog
// @Produce     json
// @Success     200 {array}  api.BlogResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /blog [get]
func ListBlogsHandler(svc ContentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		blogs, err := svc.ListBlogs(c.Request().Context())
		if err != nil {
			return handler.WriteError(c, err)
		}
		resp := make([]api.BlogResponse, 0, len(blogs))
		for _, b := range blogs {
			resp = append(resp, api.BlogResponse{Title: b.Title, Content: b.Content, DatePosted: b.DatePosted})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateBlogHandler 新增文章
// @Summary     新增部落格文章
// @Description 發文時間由伺服器決定
// @Tags        blog
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateBlogRequest true "文章內容"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /blog [post]
func CreateBlogHandler(svc ContentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.ActingUserID(c)
		if err != nil {
			return err
		}
		var req api.CreateBlogRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		if _, err := svc.AddBlog(c.Request().Context(), req.Title, req.Content, userID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Blog added successfully!"})
	}
}
