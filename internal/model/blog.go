// File: internal/model/blog.go
package model

import "time"

type Blog struct {
	ID         int       `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	DatePosted time.Time `db:"date_posted" json:"date_posted"`
}
