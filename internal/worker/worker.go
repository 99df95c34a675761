package worker

import (
	"context"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many tasks run at once. The server uses it for bcrypt work.
type Pool interface {
	Submit(Task)
	SubmitContext(context.Context, Task) error
	Stop()
	Size() int
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), size: n}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	size    int
	wg      sync.WaitGroup
}

// Submit blocks until a worker picks the task up.
// After Stop the task runs on the caller's goroutine.
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	if p.stopped {
		p.mu.RUnlock()
		if t != nil {
			t()
		}
		return
	}
	p.jobs <- t
	p.mu.RUnlock()
}

// SubmitContext is Submit that gives up with ctx.Err() if ctx ends
// before a worker picks the task up. A task that was handed off still runs.
func (p *pool) SubmitContext(ctx context.Context, t Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	if p.stopped {
		p.mu.RUnlock()
		if t != nil {
			t()
		}
		return nil
	}
	defer p.mu.RUnlock()
	select {
	case p.jobs <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for running tasks; calling it twice is safe.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *pool) Size() int { return p.size }
