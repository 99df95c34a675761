package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitecms/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubResolver struct {
	id  int
	err error
}

func (s stubResolver) Resolve(string) (int, error) { return s.id, s.err }

func requireUnauthorized(t *testing.T, err error, msg string, kind service.AuthErrorKind) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, msg, he.Message)
	var authErr *service.AuthError
	require.ErrorAs(t, he.Internal, &authErr)
	require.Equal(t, kind, authErr.Kind)
}

func TestResolveUserID(t *testing.T) {
	tokens := service.NewTokenService("testsecret")

	ctx, _ := newContext("")
	_, err := resolveUserID(ctx, tokens)
	requireUnauthorized(t, err, "missing token", service.AuthInvalid)

	ctx, _ = newContext("BadHeader")
	_, err = resolveUserID(ctx, tokens)
	requireUnauthorized(t, err, "invalid authorization header format", service.AuthInvalid)

	ctx, _ = newContext("Bearer ")
	_, err = resolveUserID(ctx, tokens)
	requireUnauthorized(t, err, "invalid authorization header format", service.AuthInvalid)

	ctx, _ = newContext("Bearer invalid")
	_, err = resolveUserID(ctx, tokens)
	requireUnauthorized(t, err, "invalid token", service.AuthInvalid)

	ctx, _ = newContext("Bearer x")
	_, err = resolveUserID(ctx, stubResolver{err: &service.AuthError{Kind: service.AuthExpired}})
	requireUnauthorized(t, err, "token expired", service.AuthExpired)

	ctx, _ = newContext("Bearer x")
	_, err = resolveUserID(ctx, stubResolver{err: errors.New("other")})
	requireUnauthorized(t, err, "invalid token", service.AuthInvalid)

	tok, _, err := tokens.Issue(1)
	require.NoError(t, err)
	ctx, _ = newContext("bearer " + tok)
	id, err := resolveUserID(ctx, tokens)
	require.NoError(t, err)
	require.Equal(t, 1, id)
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("secret")
	tok, _, err := tokens.Issue(2)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		id, ok := UserID(c)
		require.True(t, ok)
		require.Equal(t, 2, id)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestUserIDMissing(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := UserID(ctx)
	require.False(t, ok)
}
