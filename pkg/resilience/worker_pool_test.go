package resilience

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolExecutesJobs(t *testing.T) {
	pool := NewWorkerPool(3, 6)
	defer pool.Close()

	var count int32
	for i := 0; i < 10; i++ {
		if err := pool.Submit(context.Background(), func() error {
			atomic.AddInt32(&count, 1)
			return nil
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	pool.Close()
	if err := pool.Wait(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := atomic.LoadInt32(&count); got != 10 {
		t.Fatalf("expected 10 jobs executed, got %d", got)
	}
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Close()
	if err := pool.Submit(context.Background(), func() error { return nil }); err != ErrWorkerPoolClosed {
		t.Fatalf("expected ErrWorkerPoolClosed, got %v", err)
	}
}

func TestWorkerPoolKeepsEarliestError(t *testing.T) {
	pool := NewWorkerPool(4, 8)

	for i := 0; i < 8; i++ {
		if err := pool.Submit(context.Background(), func() error {
			if i == 2 {
				// Let later failures land first.
				time.Sleep(20 * time.Millisecond)
			}
			if i >= 2 {
				return fmt.Errorf("job %d failed", i)
			}
			return nil
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	pool.Close()
	err := pool.Wait()
	if err == nil || err.Error() != "job 2 failed" {
		t.Fatalf("expected error from job 2, got %v", err)
	}
}

func TestWorkerPoolSubmitCancelled(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	defer pool.Close()

	block := make(chan struct{})
	defer close(block)

	// One job occupies the worker, one fills the queue.
	_ = pool.Submit(context.Background(), func() error { <-block; return nil })
	_ = pool.Submit(context.Background(), func() error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, func() error { return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
