package store

import (
	"context"
	"fmt"

	"sitecms/internal/database"
	"sitecms/internal/model"
)

// DeletedUsername 作者已被刪除的訊息顯示的名稱
const DeletedUsername = "[deleted]"

// CreateMessage 新增訊息；作者不存在時錯誤滿足 IsForeignKeyViolation
func CreateMessage(ctx context.Context, db database.DB, m *model.Message) error {
	row := db.QueryRow(ctx,
		`INSERT INTO messages (user_id, message, timestamp)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		m.UserID,
		m.Message,
		m.Timestamp,
	)
	if err := row.Scan(&m.ID); err != nil {
		return fmt.Errorf("CreateMessage: %w", err)
	}
	return nil
}

// ListChatEntries 依時間由舊到新，讀取時才關聯作者名稱
func ListChatEntries(ctx context.Context, db database.DB) ([]model.ChatEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT COALESCE(u.username, $1), m.message, m.timestamp
		 FROM messages m
		 LEFT JOIN users u ON u.id = m.user_id
		 ORDER BY m.timestamp ASC, m.id ASC`,
		DeletedUsername,
	)
	if err != nil {
		return nil, fmt.Errorf("ListChatEntries: %w", err)
	}
	defer rows.Close()

	entries := []model.ChatEntry{}
	for rows.Next() {
		var e model.ChatEntry
		if err := rows.Scan(&e.Username, &e.Message, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("ListChatEntries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListChatEntries: %w", err)
	}
	return entries, nil
}
