package service

import (
	"context"
	"testing"

	"sitecms/internal/store"
	"sitecms/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	steppingClock(t)
	ctx := context.Background()
	db := testutil.NewMemDB()
	alice := db.AddUser("alice", "h", false)
	bob := db.AddUser("bob", "h", true)
	svc := NewChatService(db)

	entries, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = svc.PostMessage(ctx, "Hello!", alice)
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, "Hi alice", bob)
	require.NoError(t, err)

	entries, err = svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "alice", entries[0].Username)
	require.Equal(t, "Hello!", entries[0].Message)
	require.Equal(t, "bob", entries[1].Username)
	require.True(t, entries[0].Timestamp.Before(entries[1].Timestamp))

	_, err = svc.PostMessage(ctx, "ghost", 999)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.PostMessage(ctx, "  ", alice)
	require.ErrorIs(t, err, ErrValidation)
}

func TestChatDeletedAuthor(t *testing.T) {
	steppingClock(t)
	ctx := context.Background()
	db := testutil.NewMemDB()
	adminID := db.AddUser("gone", "h", true)
	svc := NewChatService(db)

	_, err := svc.PostMessage(ctx, "bye", adminID)
	require.NoError(t, err)

	deleted, err := store.DeleteAdminByName(ctx, db, "gone")
	require.NoError(t, err)
	require.True(t, deleted)

	entries, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, store.DeletedUsername, entries[0].Username)

	_, err = svc.PostMessage(ctx, "still here?", adminID)
	require.ErrorIs(t, err, ErrUnauthorized)
}
