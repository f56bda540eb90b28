package closer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCloseRunsLIFO(t *testing.T) {
	c := NewCloser(0)

	var order []string
	for _, name := range []string{"db", "redis", "http"} {
		name := name
		c.Add(func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if len(order) != 3 || order[0] != "http" || order[2] != "db" {
		t.Fatalf("close order = %v, want [http redis db]", order)
	}
}

func TestCloseCollectsErrors(t *testing.T) {
	c := NewCloser(0)
	c.Add(func(ctx context.Context) error { return nil })
	c.Add(func(ctx context.Context) error { return errors.New("redis: close failed") })

	err := c.Close(context.Background())
	if err == nil {
		t.Fatalf("Close() error = nil, want close failure")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCloser(0)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("Close(first) error = %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("Close(second) error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("close func ran %d times, want 1", calls)
	}
}

func TestCloseForcesRemainingOnTimeout(t *testing.T) {
	c := NewCloser(100 * time.Millisecond)

	forced := make(chan struct{}, 1)
	c.Add(func(ctx context.Context) error {
		forced <- struct{}{}
		return nil
	})
	c.Add(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := c.Close(ctx); err == nil {
		t.Fatalf("Close() error = nil, want interrupted shutdown")
	}

	select {
	case <-forced:
	case <-time.After(time.Second):
		t.Fatalf("remaining func was not forced")
	}
}
