package resilience

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolLimitsConcurrency(t *testing.T) {
	p := NewPool(2)

	var cur, peak int64
	var wg sync.WaitGroup
	gate := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Run(context.Background(), func() error {
				n := atomic.AddInt64(&cur, 1)
				for {
					old := atomic.LoadInt64(&peak)
					if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
						break
					}
				}
				<-gate
				atomic.AddInt64(&cur, -1)
				return nil
			})
		}()
	}

	close(gate)
	wg.Wait()

	if got := atomic.LoadInt64(&peak); got > 2 {
		t.Fatalf("expected at most 2 concurrent calls, saw %d", got)
	}
}

func TestPoolNilRunsDirectly(t *testing.T) {
	var p *Pool
	called := false
	if err := p.Run(context.Background(), func() error {
		called = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected fn to run")
	}
}

func TestPoolCancelledContext(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	acquired := make(chan struct{})

	go func() {
		_ = p.Run(context.Background(), func() error {
			close(acquired)
			<-release
			return nil
		})
	}()
	<-acquired

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Run(ctx, func() error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(release)
}
