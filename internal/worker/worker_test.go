package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	require.Equal(t, 3, p.Size())
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Submit(nil)
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaultsAndStop(t *testing.T) {
	p := NewPool(0)
	require.Equal(t, 1, p.Size())
	p.Stop()
	p.Stop()

	ran := false
	p.Submit(func() { ran = true })
	require.True(t, ran)
	p.Submit(nil)
}

func TestSubmitContext(t *testing.T) {
	p := NewPool(1)

	ran := make(chan struct{})
	require.NoError(t, p.SubmitContext(context.Background(), func() { close(ran) }))
	<-ran

	// 唯一的 worker 被佔住時，ctx 結束就放棄
	release := make(chan struct{})
	p.Submit(func() { <-release })
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	called := false
	err := p.SubmitContext(ctx, func() { called = true })
	require.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	require.ErrorIs(t, p.SubmitContext(canceled, func() { called = true }), context.Canceled)

	p.Stop()
	require.False(t, called)

	inline := false
	require.NoError(t, p.SubmitContext(context.Background(), func() { inline = true }))
	require.True(t, inline)
}
