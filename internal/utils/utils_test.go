package utils

import (
	"context"
	"testing"
	"time"
)

func TestWaitForZeroDuration(t *testing.T) {
	t.Parallel()

	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("expected nil for non-positive duration, got %v", err)
	}
}

func TestWaitForCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Hour); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitForCompletes(t *testing.T) {
	t.Parallel()

	if err := WaitFor(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("expected nil after waiting, got %v", err)
	}
}
