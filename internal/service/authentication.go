// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 存取令牌有效期限
const AccessTokenTTL = time.Hour

var parseWithClaims = jwt.ParseWithClaims

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	ID int `json:"id"`
	jwt.RegisteredClaims
}

// AuthErrorKind 令牌驗證失敗的原因
type AuthErrorKind int

const (
	AuthInvalid AuthErrorKind = iota
	AuthExpired
)

// AuthError 令牌無法解析成使用者；errors.Is(err, ErrUnauthorized) 為真
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Kind == AuthExpired {
		return "token expired"
	}
	return "invalid token"
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// TokenService 以啟動時載入的密鑰簽發與驗證 HS256 令牌
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
		now:    time.Now,
	}
}

// Issue 產生包含使用者 ID 的 JWT，到期時間為簽發時間 + TTL
func (s *TokenService) Issue(userID int) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("JWT secret not set")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := CustomClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Resolve 驗證簽章與期限並回傳使用者 ID
func (s *TokenService) Resolve(tokenString string) (int, error) {
	if len(s.secret) == 0 {
		return 0, &AuthError{Kind: AuthInvalid, Err: fmt.Errorf("JWT secret not set")}
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, &AuthError{Kind: AuthExpired, Err: err}
		}
		return 0, &AuthError{Kind: AuthInvalid, Err: err}
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return 0, &AuthError{Kind: AuthInvalid, Err: errors.New("invalid claims")}
	}
	return claims.ID, nil
}
