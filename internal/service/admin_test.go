package service

import (
	"context"
	"strings"
	"testing"

	"sitecms/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestAdminCreate(t *testing.T) {
	fastHashing(t)
	ctx := context.Background()
	db := testutil.NewMemDB()
	hasher := NewPasswordHasher(nil)
	svc := NewAdminService(db, hasher, "2312")

	_, err := svc.CreateAdmin(ctx, "root", "pw", "0000")
	require.ErrorIs(t, err, ErrForbidden)
	require.EqualError(t, err, "Invalid PIN")
	require.Equal(t, 0, db.UserCount())

	u, err := svc.CreateAdmin(ctx, "root", "pw", "2312")
	require.NoError(t, err)
	require.True(t, u.IsAdmin)

	_, err = svc.CreateAdmin(ctx, "big", strings.Repeat("x", 73), "2312")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, 1, db.UserCount())

	_, err = svc.CreateAdmin(ctx, "root", "pw", "2312")
	require.ErrorIs(t, err, ErrConflict)
	require.EqualError(t, err, "User already exists")

	tokens := NewTokenService("s")
	res, err := NewAccountService(db, hasher, tokens).Login(ctx, "root", "pw")
	require.NoError(t, err)
	require.True(t, res.User.IsAdmin)
}

func TestAdminDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMemDB()
	db.AddUser("root", "h", true)
	db.AddUser("plain", "h", false)
	svc := NewAdminService(db, nil, "2312")

	require.ErrorIs(t, svc.DeleteAdmin(ctx, "root", "bad"), ErrForbidden)
	require.Equal(t, 2, db.UserCount())

	err := svc.DeleteAdmin(ctx, "plain", "2312")
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Admin user not found")
	require.ErrorIs(t, svc.DeleteAdmin(ctx, "missing", "2312"), ErrNotFound)

	require.NoError(t, svc.DeleteAdmin(ctx, "root", "2312"))
	require.Equal(t, 1, db.UserCount())

	require.ErrorIs(t, svc.DeleteAdmin(ctx, "", "2312"), ErrValidation)
}

func TestAdminListUsers(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMemDB()
	admin := db.AddUser("root", "h", true)
	plain := db.AddUser("plain", "h", false)
	svc := NewAdminService(db, nil, "2312")

	_, err := svc.ListUsers(ctx, plain)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.ListUsers(ctx, 999)
	require.ErrorIs(t, err, ErrForbidden)

	users, err := svc.ListUsers(ctx, admin)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "root", users[0].Username)
	require.True(t, users[0].IsAdmin)
	require.False(t, users[1].IsAdmin)
}
