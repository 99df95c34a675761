package service

import (
	"context"
	"time"

	"sitecms/internal/database"
	"sitecms/internal/model"
	"sitecms/internal/store"
)

var timeNow = func() time.Time { return time.Now().UTC() }

// actingUser 重新從資料庫讀取令牌對應的使用者；不存在時回傳 ErrUnauthorized
func actingUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := store.GetUserByID(ctx, db, userID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, newError(ErrUnauthorized, "Invalid user")
		}
		return nil, err
	}
	return u, nil
}

// actingAdmin 使用者必須存在且為管理員，否則回傳 ErrForbidden
func actingAdmin(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := store.GetUserByID(ctx, db, userID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, newError(ErrForbidden, "admin privileges required")
		}
		return nil, err
	}
	if !u.IsAdmin {
		return nil, newError(ErrForbidden, "admin privileges required")
	}
	return u, nil
}
