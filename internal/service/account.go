package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sitecms/internal/database"
	"sitecms/internal/model"
	"sitecms/internal/store"
)

// LoginResult 登入成功後回傳的令牌與使用者
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *model.User
}

// AccountService 處理自助註冊與登入
type AccountService struct {
	db     database.DB
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAccountService(db database.DB, hasher *PasswordHasher, tokens *TokenService) *AccountService {
	return &AccountService{db: db, hasher: hasher, tokens: tokens}
}

// Signup 建立一般使用者（is_admin 永遠為 false）
func (s *AccountService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	return createUser(ctx, s.db, s.hasher, username, password, false, "Username already exists")
}

// Login 驗證帳密並簽發一小時有效的存取令牌
func (s *AccountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, newError(ErrValidation, "username and password are required")
	}

	user, err := store.GetUserByName(ctx, s.db, username)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, newError(ErrUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(ctx, user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError(ErrUnauthorized, "Invalid credentials")
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

func createUser(ctx context.Context, db database.DB, hasher *PasswordHasher, username, password string, isAdmin bool, conflictMsg string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, newError(ErrValidation, "username and password are required")
	}
	// validator 的 max 以字元計算，多位元組字元仍可能超過 bcrypt 上限
	if len(password) > MaxPasswordBytes {
		return nil, newError(ErrValidation, fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}

	if _, err := store.GetUserByName(ctx, db, username); err == nil {
		return nil, newError(ErrConflict, conflictMsg)
	} else if !store.IsNotFound(err) {
		return nil, err
	}

	hash, err := hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	user, err := store.CreateUser(ctx, db, &model.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		// 與其他請求同時註冊同名帳號
		if store.IsUniqueViolation(err) {
			return nil, newError(ErrConflict, conflictMsg)
		}
		return nil, err
	}
	return user, nil
}
