package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Do(context.Background(), Config{MaxAttempts: 3, Delay: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("permanent")
	err := Do(context.Background(), Config{MaxAttempts: 2, Delay: time.Millisecond}, func() error {
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped original error, got %v", err)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, Config{MaxAttempts: 3, Delay: time.Minute}, func() error {
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
