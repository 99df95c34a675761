// File: internal/service/password.go
package service

import (
	"context"

	"sitecms/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes bcrypt 只接受 72 bytes 以內的密碼
const MaxPasswordBytes = 72

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// PasswordHasher 把 bcrypt 運算丟到 worker pool，限制同時進行的雜湊數量。
// pool 為 nil 時直接在呼叫端 goroutine 執行。
type PasswordHasher struct {
	pool worker.Pool
}

func NewPasswordHasher(pool worker.Pool) *PasswordHasher {
	return &PasswordHasher{pool: pool}
}

type hashResult struct {
	hash string
	err  error
}

func (h *PasswordHasher) run(ctx context.Context, fn func() hashResult) hashResult {
	if h == nil || h.pool == nil {
		return fn()
	}
	ch := make(chan hashResult, 1)
	// 所有 worker 都在忙時，請求取消就不再等待
	if err := h.pool.SubmitContext(ctx, func() { ch <- fn() }); err != nil {
		return hashResult{err: err}
	}
	select {
	case r := <-ch:
		return r
	case <-ctx.Done():
		return hashResult{err: ctx.Err()}
	}
}

// Hash 產生 salted bcrypt 哈希
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	r := h.run(ctx, func() hashResult {
		s, err := HashPassword(password)
		return hashResult{hash: s, err: err}
	})
	return r.hash, r.err
}

// Verify 以 bcrypt 的常數時間比對驗證密碼；不符時回傳 false 與 nil
func (h *PasswordHasher) Verify(ctx context.Context, hash, password string) (bool, error) {
	r := h.run(ctx, func() hashResult {
		return hashResult{err: ComparePassword(hash, password)}
	})
	if r.err != nil {
		if ctx.Err() != nil {
			return false, r.err
		}
		return false, nil
	}
	return true, nil
}
