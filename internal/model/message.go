// File: internal/model/message.go
package model

import "time"

// Message 聊天訊息；作者被刪除後 UserID 為 nil
type Message struct {
	ID        int       `db:"id" json:"id"`
	UserID    *int      `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// ChatEntry 是讀取時與 users 關聯後的訊息
type ChatEntry struct {
	Username  string    `db:"username" json:"user"`
	Message   string    `db:"message" json:"message"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
