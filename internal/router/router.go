// File: internal/router/router.go
package router

import (
	"sitecms/internal/cache"
	"sitecms/internal/database"
	"sitecms/internal/handler"
	"sitecms/internal/handler/admin"
	"sitecms/internal/handler/auth"
	"sitecms/internal/handler/chat"
	"sitecms/internal/handler/content"
	"sitecms/internal/middleware"
	"sitecms/internal/service"
	"sitecms/internal/worker"

	"github.com/labstack/echo/v4"
)

// Deps 是每個請求共用的依賴，啟動後只讀
type Deps struct {
	DB       database.DB
	Cache    cache.Cache // nil 表示沒有設定 Redis
	Tokens   middleware.TokenResolver
	Accounts auth.AccountService
	Content  content.ContentService
	Chat     chat.ChatService
	Admin    admin.AdminService
}

// NewDeps 以資料庫、worker pool 與設定組出所有 service
func NewDeps(db database.DB, c cache.Cache, pool worker.Pool, jwtSecret, adminPIN string) Deps {
	hasher := service.NewPasswordHasher(pool)
	tokens := service.NewTokenService(jwtSecret)
	return Deps{
		DB:       db,
		Cache:    c,
		Tokens:   tokens,
		Accounts: service.NewAccountService(db, hasher, tokens),
		Content:  service.NewContentService(db),
		Chat:     service.NewChatService(db),
		Admin:    service.NewAdminService(db, hasher, adminPIN),
	}
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Tokens)

	// 健康檢查
	e.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	e.POST("/signup", auth.SignupHandler(d.Accounts))
	e.POST("/login", auth.LoginHandler(d.Accounts))

	// 部落格
	e.GET("/blog", content.ListBlogsHandler(d.Content))
	e.POST("/blog", content.CreateBlogHandler(d.Content), requireAuth)

	// 聊天（輪詢）
	e.GET("/chat", chat.ListMessagesHandler(d.Chat))
	e.POST("/chat", chat.PostMessageHandler(d.Chat), requireAuth)

	// 管理員；逐一掛 requireAuth，Group.Use 會替 /admin 與 /admin/* 加上需登入的 catch-all
	e.GET("/admin/users", admin.ListUsersHandler(d.Admin), requireAuth)
	e.POST("/admin/create", admin.CreateAdminHandler(d.Admin), requireAuth)
	e.POST("/admin/delete", admin.DeleteAdminHandler(d.Admin), requireAuth)

	// 頁面；靜態路徑優先於 /:slug
	e.PUT("/update/:slug", content.UpdatePageHandler(d.Content), requireAuth)
	e.GET("/:slug", content.GetPageHandler(d.Content))
}
