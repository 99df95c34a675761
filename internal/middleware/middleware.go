package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sitecms/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user_id"

// TokenResolver 把 bearer token 解析成使用者 ID
type TokenResolver interface {
	Resolve(token string) (int, error)
}

var (
	errMissingToken = errors.New("missing token")
	errBadHeader    = errors.New("invalid authorization header format")
)

func unauthorized(message string, kind service.AuthErrorKind, err error) error {
	return echo.NewHTTPError(http.StatusUnauthorized, message).
		SetInternal(&service.AuthError{Kind: kind, Err: err})
}

// resolveUserID 從 Authorization: Bearer <token> 取得使用者 ID，失敗時的內部錯誤為 *service.AuthError
func resolveUserID(c echo.Context, tokens TokenResolver) (int, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return 0, unauthorized(errMissingToken.Error(), service.AuthInvalid, errMissingToken)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return 0, unauthorized(errBadHeader.Error(), service.AuthInvalid, errBadHeader)
	}

	id, err := tokens.Resolve(strings.TrimSpace(parts[1]))
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return 0, echo.NewHTTPError(http.StatusUnauthorized, authErr.Error()).SetInternal(authErr)
		}
		return 0, unauthorized("invalid token", service.AuthInvalid, err)
	}
	return id, nil
}

// RequireAuth 驗證 bearer token 並把使用者 ID 存進 context
func RequireAuth(tokens TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := resolveUserID(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, id)
			return next(c)
		}
	}
}

// UserID 取得 RequireAuth 存入的使用者 ID
func UserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ContextUserKey).(int)
	return id, ok
}
