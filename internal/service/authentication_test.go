package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndResolve(t *testing.T) {
	t.Cleanup(restoreGlobals)
	s := NewTokenService("s")
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	tok, exp, err := s.Issue(5)
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), exp)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.Equal(t, 5, claims.ID)
	require.Equal(t, "5", claims.Subject)

	id, err := s.Resolve(tok)
	require.NoError(t, err)
	require.Equal(t, 5, id)
}

func TestResolveExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	s := NewTokenService("s")
	now := time.Now()
	s.now = func() time.Time { return now }
	tok, _, err := s.Issue(1)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(AccessTokenTTL + time.Minute) }
	_, err = s.Resolve(tok)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, AuthExpired, authErr.Kind)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.EqualError(t, err, "token expired")
}

func TestResolveInvalid(t *testing.T) {
	t.Cleanup(restoreGlobals)
	s := NewTokenService("s")

	assertInvalid := func(err error) {
		t.Helper()
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, AuthInvalid, authErr.Kind)
		require.ErrorIs(t, err, ErrUnauthorized)
	}

	_, err := s.Resolve("invalid")
	assertInvalid(err)

	other, _, err := NewTokenService("other").Issue(1)
	require.NoError(t, err)
	_, err = s.Resolve(other)
	assertInvalid(err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = s.Resolve(tokNone)
	assertInvalid(err)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1}).SignedString([]byte("s"))
	_, err = s.Resolve(noExp)
	assertInvalid(err)

	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = s.Resolve("whatever")
	assertInvalid(err)
}

func TestTokenServiceWithoutSecret(t *testing.T) {
	s := NewTokenService("")
	_, _, err := s.Issue(1)
	require.Error(t, err)
	_, err = s.Resolve("abc")
	require.True(t, errors.Is(err, ErrUnauthorized))
}
