package store

import (
	"context"
	"fmt"

	"sitecms/internal/database"
	"sitecms/internal/model"
)

func GetPage(ctx context.Context, db database.DB, slug string) (*model.PageContent, error) {
	row := db.QueryRow(ctx,
		`SELECT id, page, title, description
		 FROM page_contents WHERE page = $1`,
		slug,
	)
	p := &model.PageContent{}
	if err := row.Scan(&p.ID, &p.Page, &p.Title, &p.Description); err != nil {
		return nil, fmt.Errorf("GetPage: %w", err)
	}
	return p, nil
}

// UpdatePage 部分更新；nil 欄位保留原值
func UpdatePage(ctx context.Context, db database.DB, slug string, title, description *string) (*model.PageContent, error) {
	row := db.QueryRow(ctx,
		`UPDATE page_contents SET
		     title = COALESCE($2, title),
		     description = COALESCE($3, description)
		 WHERE page = $1
		 RETURNING id, page, title, description`,
		slug,
		title,
		description,
	)
	p := &model.PageContent{}
	if err := row.Scan(&p.ID, &p.Page, &p.Title, &p.Description); err != nil {
		return nil, fmt.Errorf("UpdatePage: %w", err)
	}
	return p, nil
}
