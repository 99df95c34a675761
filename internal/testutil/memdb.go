// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"sitecms/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type memUser struct {
	id        int
	username  string
	hash      string
	isAdmin   bool
	createdAt time.Time
}

type memPage struct {
	id          int
	page        string
	title       string
	description string
}

type memBlog struct {
	id         int
	title      string
	content    string
	datePosted time.Time
}

type memMessage struct {
	id        int
	userID    *int
	message   string
	timestamp time.Time
}

// MemDB 是 database.DB 的記憶體實作，只認得 store 套件發出的 SQL。
// 唯一鍵與外鍵違規會回傳與 Postgres 相同 SQLSTATE 的 *pgconn.PgError。
type MemDB struct {
	mu       sync.Mutex
	nextID   int
	users    []*memUser
	pages    []*memPage
	blogs    []*memBlog
	messages []*memMessage
}

var _ database.DB = (*MemDB)(nil)

func NewMemDB() *MemDB {
	return &MemDB{}
}

func (m *MemDB) id() int {
	m.nextID++
	return m.nextID
}

func (m *MemDB) Ping(context.Context) error { return nil }

func (m *MemDB) Close() {}

// AddUser 直接寫入使用者（跳過雜湊），回傳 ID
func (m *MemDB) AddUser(username, hash string, isAdmin bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &memUser{id: m.id(), username: username, hash: hash, isAdmin: isAdmin, createdAt: time.Now().UTC()}
	m.users = append(m.users, u)
	return u.id
}

// UserCount 目前使用者數量
func (m *MemDB) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *MemDB) userBy(match func(*memUser) bool) *memUser {
	for _, u := range m.users {
		if match(u) {
			return u
		}
	}
	return nil
}

func (m *MemDB) pageBy(slug string) *memPage {
	for _, p := range m.pages {
		if p.page == slug {
			return p
		}
	}
	return nil
}

func userValues(u *memUser) []any {
	return []any{u.id, u.username, u.hash, u.isAdmin, u.createdAt}
}

func pageValues(p *memPage) []any {
	return []any{p.id, p.page, p.title, p.description}
}

func (m *MemDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "FROM users WHERE id = $1"):
		id := args[0].(int)
		if u := m.userBy(func(u *memUser) bool { return u.id == id }); u != nil {
			return database.FakeRow{Values: userValues(u)}
		}
		return database.FakeRow{Err: pgx.ErrNoRows}

	case strings.Contains(sql, "FROM users WHERE username = $1"):
		name := args[0].(string)
		if u := m.userBy(func(u *memUser) bool { return u.username == name }); u != nil {
			return database.FakeRow{Values: userValues(u)}
		}
		return database.FakeRow{Err: pgx.ErrNoRows}

	case strings.Contains(sql, "INSERT INTO users"):
		name := args[0].(string)
		if m.userBy(func(u *memUser) bool { return u.username == name }) != nil {
			return database.FakeRow{Err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}}
		}
		u := &memUser{id: m.id(), username: name, hash: args[1].(string), isAdmin: args[2].(bool), createdAt: time.Now().UTC()}
		m.users = append(m.users, u)
		return database.FakeRow{Values: []any{u.id, u.createdAt}}

	case strings.Contains(sql, "FROM page_contents WHERE page = $1"):
		if p := m.pageBy(args[0].(string)); p != nil {
			return database.FakeRow{Values: pageValues(p)}
		}
		return database.FakeRow{Err: pgx.ErrNoRows}

	case strings.Contains(sql, "UPDATE page_contents"):
		p := m.pageBy(args[0].(string))
		if p == nil {
			return database.FakeRow{Err: pgx.ErrNoRows}
		}
		if title, _ := args[1].(*string); title != nil {
			p.title = *title
		}
		if desc, _ := args[2].(*string); desc != nil {
			p.description = *desc
		}
		return database.FakeRow{Values: pageValues(p)}

	case strings.Contains(sql, "INSERT INTO blogs"):
		b := &memBlog{id: m.id(), title: args[0].(string), content: args[1].(string), datePosted: args[2].(time.Time)}
		m.blogs = append(m.blogs, b)
		return database.FakeRow{Values: []any{b.id}}

	case strings.Contains(sql, "INSERT INTO messages"):
		uid := args[0].(*int)
		if uid != nil && m.userBy(func(u *memUser) bool { return u.id == *uid }) == nil {
			return database.FakeRow{Err: &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}}
		}
		msg := &memMessage{id: m.id(), userID: uid, message: args[1].(string), timestamp: args[2].(time.Time)}
		m.messages = append(m.messages, msg)
		return database.FakeRow{Values: []any{msg.id}}
	}
	panic(fmt.Sprintf("MemDB.QueryRow: unsupported sql %q", sql))
}

func (m *MemDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "FROM users ORDER BY id"):
		rows := &database.FakeRows{}
		for _, u := range m.users {
			rows.Data = append(rows.Data, []any{u.id, u.username, u.isAdmin})
		}
		return rows, nil

	case strings.Contains(sql, "FROM blogs"):
		blogs := append([]*memBlog(nil), m.blogs...)
		sort.SliceStable(blogs, func(i, j int) bool {
			if blogs[i].datePosted.Equal(blogs[j].datePosted) {
				return blogs[i].id > blogs[j].id
			}
			return blogs[i].datePosted.After(blogs[j].datePosted)
		})
		rows := &database.FakeRows{}
		for _, b := range blogs {
			rows.Data = append(rows.Data, []any{b.id, b.title, b.content, b.datePosted})
		}
		return rows, nil

	case strings.Contains(sql, "FROM messages m"):
		placeholder := args[0].(string)
		msgs := append([]*memMessage(nil), m.messages...)
		sort.SliceStable(msgs, func(i, j int) bool {
			if msgs[i].timestamp.Equal(msgs[j].timestamp) {
				return msgs[i].id < msgs[j].id
			}
			return msgs[i].timestamp.Before(msgs[j].timestamp)
		})
		rows := &database.FakeRows{}
		for _, msg := range msgs {
			name := placeholder
			if msg.userID != nil {
				if u := m.userBy(func(u *memUser) bool { return u.id == *msg.userID }); u != nil {
					name = u.username
				}
			}
			rows.Data = append(rows.Data, []any{name, msg.message, msg.timestamp})
		}
		return rows, nil
	}
	panic(fmt.Sprintf("MemDB.Query: unsupported sql %q", sql))
}

func (m *MemDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "INSERT INTO page_contents"):
		slug := args[0].(string)
		if m.pageBy(slug) != nil {
			return pgconn.NewCommandTag("INSERT 0 0"), nil
		}
		m.pages = append(m.pages, &memPage{id: m.id(), page: slug, title: args[1].(string), description: args[2].(string)})
		return pgconn.NewCommandTag("INSERT 0 1"), nil

	case strings.Contains(sql, "DELETE FROM users"):
		name := args[0].(string)
		kept := m.users[:0]
		deleted := 0
		for _, u := range m.users {
			if u.username == name && u.isAdmin {
				deleted++
				for _, msg := range m.messages {
					if msg.userID != nil && *msg.userID == u.id {
						msg.userID = nil
					}
				}
				continue
			}
			kept = append(kept, u)
		}
		m.users = kept
		return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", deleted)), nil
	}
	panic(fmt.Sprintf("MemDB.Exec: unsupported sql %q", sql))
}
