package handler

import (
	"net/http"

	"sitecms/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ActingUserID 取得 RequireAuth 放入 context 的使用者 ID
func ActingUserID(c echo.Context) (int, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return id, nil
}
