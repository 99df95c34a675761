package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sitecms/internal/handler"
	"sitecms/internal/middleware"
	"sitecms/internal/model"
	"sitecms/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubContent struct {
	getPageFn    func(ctx context.Context, slug string) (*model.PageContent, error)
	updatePageFn func(ctx context.Context, slug string, title, description *string, actingUserID int) (*model.PageContent, error)
	listBlogsFn  func(ctx context.Context) ([]model.Blog, error)
	addBlogFn    func(ctx context.Context, title, content string, actingUserID int) (*model.Blog, error)
}

func (s *stubContent) GetPage(ctx context.Context, slug string) (*model.PageContent, error) {
	return s.getPageFn(ctx, slug)
}

func (s *stubContent) UpdatePage(ctx context.Context, slug string, title, description *string, actingUserID int) (*model.PageContent, error) {
	return s.updatePageFn(ctx, slug, title, description, actingUserID)
}

func (s *stubContent) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.listBlogsFn(ctx)
}

func (s *stubContent) AddBlog(ctx context.Context, title, content string, actingUserID int) (*model.Blog, error) {
	return s.addBlogFn(ctx, title, content, actingUserID)
}

func newCtx(method, body string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = handler.NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set(middleware.ContextUserKey, userID)
	}
	return c, rec
}

func withSlug(c echo.Context, slug string) echo.Context {
	c.SetParamNames("slug")
	c.SetParamValues(slug)
	return c
}

func TestGetPageHandler(t *testing.T) {
	svc := &stubContent{getPageFn: func(_ context.Context, slug string) (*model.PageContent, error) {
		if slug == "home" {
			return &model.PageContent{Page: "home", Title: "Home Page", Description: "Default home content."}, nil
		}
		return nil, &service.Error{Kind: service.ErrNotFound, Message: "Page not found"}
	}}

	ctx, rec := newCtx(http.MethodGet, "", 0)
	require.NoError(t, GetPageHandler(svc)(withSlug(ctx, "home")))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"title":"Home Page","description":"Default home content."}`, rec.Body.String())

	ctx, rec = newCtx(http.MethodGet, "", 0)
	require.NoError(t, GetPageHandler(svc)(withSlug(ctx, "nonexistent-slug")))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Page not found"}`, rec.Body.String())
}

func TestUpdatePageHandler(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		ctx, _ := newCtx(http.MethodPut, `{"title":"x"}`, 0)
		err := UpdatePageHandler(&stubContent{})(withSlug(ctx, "home"))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("title too long", func(t *testing.T) {
		ctx, _ := newCtx(http.MethodPut, `{"title":"`+strings.Repeat("a", 101)+`"}`, 1)
		err := UpdatePageHandler(&stubContent{})(withSlug(ctx, "home"))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &stubContent{updatePageFn: func(context.Context, string, *string, *string, int) (*model.PageContent, error) {
			return nil, &service.Error{Kind: service.ErrForbidden, Message: "admin privileges required"}
		}}
		ctx, rec := newCtx(http.MethodPut, `{"title":"x"}`, 2)
		require.NoError(t, UpdatePageHandler(svc)(withSlug(ctx, "home")))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		var gotTitle, gotDesc *string
		var gotUser int
		svc := &stubContent{updatePageFn: func(_ context.Context, slug string, title, desc *string, uid int) (*model.PageContent, error) {
			gotTitle, gotDesc, gotUser = title, desc, uid
			return &model.PageContent{Page: slug}, nil
		}}
		ctx, rec := newCtx(http.MethodPut, `{"title":"Welcome"}`, 3)
		require.NoError(t, UpdatePageHandler(svc)(withSlug(ctx, "products")))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Products page updated."}`, rec.Body.String())
		require.NotNil(t, gotTitle)
		require.Equal(t, "Welcome", *gotTitle)
		require.Nil(t, gotDesc)
		require.Equal(t, 3, gotUser)
	})
}

func TestListBlogsHandler(t *testing.T) {
	ts := time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		svc := &stubContent{listBlogsFn: func(context.Context) ([]model.Blog, error) { return nil, nil }}
		ctx, rec := newCtx(http.MethodGet, "", 0)
		require.NoError(t, ListBlogsHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("list", func(t *testing.T) {
		svc := &stubContent{listBlogsFn: func(context.Context) ([]model.Blog, error) {
			return []model.Blog{{ID: 1, Title: "t", Content: "c", DatePosted: ts}}, nil
		}}
		ctx, rec := newCtx(http.MethodGet, "", 0)
		require.NoError(t, ListBlogsHandler(svc)(ctx))
		require.JSONEq(t, `[{"title":"t","content":"c","date_posted":"2025-05-01T15:04:05Z"}]`, rec.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		svc := &stubContent{listBlogsFn: func(context.Context) ([]model.Blog, error) { return nil, errors.New("x") }}
		ctx, rec := newCtx(http.MethodGet, "", 0)
		require.NoError(t, ListBlogsHandler(svc)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateBlogHandler(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		ctx, _ := newCtx(http.MethodPost, `{"title":"t"}`, 1)
		err := CreateBlogHandler(&stubContent{})(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusBadRequest, he.Code)
		require.Equal(t, "content is required", he.Message)
	})

	t.Run("deleted user", func(t *testing.T) {
		svc := &stubContent{addBlogFn: func(context.Context, string, string, int) (*model.Blog, error) {
			return nil, &service.Error{Kind: service.ErrUnauthorized, Message: "Invalid user"}
		}}
		ctx, rec := newCtx(http.MethodPost, `{"title":"t","content":"c"}`, 1)
		require.NoError(t, CreateBlogHandler(svc)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Invalid user"}`, rec.Body.String())
	})

	t.Run("ok", func(t *testing.T) {
		svc := &stubContent{addBlogFn: func(_ context.Context, title, content string, uid int) (*model.Blog, error) {
			require.Equal(t, "t", title)
			require.Equal(t, "c", content)
			require.Equal(t, 1, uid)
			return &model.Blog{ID: 1}, nil
		}}
		ctx, rec := newCtx(http.MethodPost, `{"title":"t","content":"c"}`, 1)
		require.NoError(t, CreateBlogHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Blog added successfully!"}`, rec.Body.String())
	})
}
