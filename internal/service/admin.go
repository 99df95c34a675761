package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"sitecms/internal/database"
	"sitecms/internal/model"
	"sitecms/internal/store"
)

// AdminService 管理員帳號管理。
// 建立與刪除管理員以共用的靜態 PIN 把關，這是低保證等級的閘門，不是密碼學控制。
type AdminService struct {
	db     database.DB
	hasher *PasswordHasher
	pin    string
}

func NewAdminService(db database.DB, hasher *PasswordHasher, pin string) *AdminService {
	return &AdminService{db: db, hasher: hasher, pin: pin}
}

func (s *AdminService) checkPIN(pin string) error {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		return newError(ErrForbidden, "Invalid PIN")
	}
	return nil
}

// ListUsers 僅管理員可列出所有使用者
func (s *AdminService) ListUsers(ctx context.Context, actingUserID int) ([]model.User, error) {
	if _, err := actingAdmin(ctx, s.db, actingUserID); err != nil {
		return nil, err
	}
	return store.ListUsers(ctx, s.db)
}

// CreateAdmin 以 PIN 建立 is_admin 為 true 的使用者
func (s *AdminService) CreateAdmin(ctx context.Context, username, password, pin string) (*model.User, error) {
	if err := s.checkPIN(pin); err != nil {
		return nil, err
	}
	return createUser(ctx, s.db, s.hasher, username, password, true, "User already exists")
}

// DeleteAdmin 只刪除 username 相符的管理員；一般使用者視為不存在
func (s *AdminService) DeleteAdmin(ctx context.Context, username, pin string) error {
	if err := s.checkPIN(pin); err != nil {
		return err
	}
	if strings.TrimSpace(username) == "" {
		return newError(ErrValidation, "username is required")
	}

	deleted, err := store.DeleteAdminByName(ctx, s.db, username)
	if err != nil {
		return err
	}
	if !deleted {
		return newError(ErrNotFound, "Admin user not found")
	}
	return nil
}
