package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 是健康檢查用到的 Redis 操作。
// 實體資料不會放進快取，每個請求都直接讀資料庫。
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Close() error
}

const (
	probeKey = "sitecms:health"
	probeTTL = 10 * time.Second
)

// Probe 寫入再讀回一個短期的 key，確認 Redis 可讀寫
func Probe(ctx context.Context, c Cache) error {
	stamp := time.Now().UTC().Format(time.RFC3339Nano)
	if err := c.Set(ctx, probeKey, stamp, probeTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	got, err := c.Get(ctx, probeKey).Result()
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}
	if got != stamp {
		return fmt.Errorf("cache probe mismatch")
	}
	return nil
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// NewMemoryFake 回傳一個以 map 保存值的 FakeCache，Probe 可以通過
func NewMemoryFake() *FakeCache {
	data := map[string]string{}
	return &FakeCache{
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			data[key] = fmt.Sprint(value)
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
	}
}
