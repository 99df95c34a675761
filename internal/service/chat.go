package service

import (
	"context"
	"strings"

	"sitecms/internal/database"
	"sitecms/internal/model"
	"sitecms/internal/store"
)

// ChatService 只能追加的聊天紀錄，客戶端以輪詢讀取
type ChatService struct {
	db database.DB
}

func NewChatService(db database.DB) *ChatService {
	return &ChatService{db: db}
}

// ListMessages 由舊到新；作者已刪除的訊息顯示為 store.DeletedUsername
func (s *ChatService) ListMessages(ctx context.Context) ([]model.ChatEntry, error) {
	return store.ListChatEntries(ctx, s.db)
}

// PostMessage 作者必須仍存在
func (s *ChatService) PostMessage(ctx context.Context, text string, actingUserID int) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newError(ErrValidation, "message is required")
	}
	if _, err := actingUser(ctx, s.db, actingUserID); err != nil {
		return nil, err
	}

	uid := actingUserID
	m := &model.Message{
		UserID:    &uid,
		Message:   text,
		Timestamp: timeNow(),
	}
	if err := store.CreateMessage(ctx, s.db, m); err != nil {
		// 讀取與寫入之間使用者被刪除
		if store.IsForeignKeyViolation(err) {
			return nil, newError(ErrUnauthorized, "Invalid user")
		}
		return nil, err
	}
	return m, nil
}
