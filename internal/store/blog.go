package store

import (
	"context"
	"fmt"

	"sitecms/internal/database"
	"sitecms/internal/model"
)

// CreateBlog 新增文章；DatePosted 由呼叫端（service）指定
func CreateBlog(ctx context.Context, db database.DB, b *model.Blog) error {
	row := db.QueryRow(ctx,
		`INSERT INTO blogs (title, content, date_posted)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		b.Title,
		b.Content,
		b.DatePosted,
	)
	if err := row.Scan(&b.ID); err != nil {
		return fmt.Errorf("CreateBlog: %w", err)
	}
	return nil
}

// ListBlogs 依發佈時間由新到舊
func ListBlogs(ctx context.Context, db database.DB) ([]model.Blog, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, content, date_posted
		 FROM blogs ORDER BY date_posted DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBlogs: %w", err)
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.DatePosted); err != nil {
			return nil, fmt.Errorf("ListBlogs: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBlogs: %w", err)
	}
	return blogs, nil
}
