package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	limiter := New(0, 0)

	if limiter.Limit() != DefaultRPS {
		t.Errorf("Limit() = %v, want %v", limiter.Limit(), DefaultRPS)
	}
	if limiter.Burst() != DefaultBurst {
		t.Errorf("Burst() = %v, want %v", limiter.Burst(), DefaultBurst)
	}

	negative := New(-1, -5)
	if negative.Limit() != DefaultRPS {
		t.Errorf("Limit() = %v, want %v for negative rps", negative.Limit(), DefaultRPS)
	}
	if negative.Burst() != DefaultBurst {
		t.Errorf("Burst() = %v, want %v for negative burst", negative.Burst(), DefaultBurst)
	}
}

func TestNew_CustomValues(t *testing.T) {
	limiter := New(25, 4)

	if limiter.Limit() != 25 {
		t.Errorf("Limit() = %v, want 25", limiter.Limit())
	}
	if limiter.Burst() != 4 {
		t.Errorf("Burst() = %v, want 4", limiter.Burst())
	}
}

func TestLimiter_Burst(t *testing.T) {
	// Low refill rate so the burst dominates the observation window
	limiter := New(0.1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow() {
			t.Fatalf("Allow() = false on burst slot %d, want true", i+1)
		}
	}

	if limiter.Allow() {
		t.Error("Allow() = true after burst drained, want false")
	}
}

func TestLimiter_WaitImmediate(t *testing.T) {
	limiter := New(10, 5)

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	if waited := time.Since(start); waited > 50*time.Millisecond {
		t.Errorf("Wait() took %v with burst available, want immediate", waited)
	}
}

func TestLimiter_WaitPaces(t *testing.T) {
	// 50 rps with burst 1: each extra request waits ~20ms
	limiter := New(50, 1)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First slot is free, the next two wait roughly 20ms each
	if elapsed < 30*time.Millisecond {
		t.Errorf("3 waits took %v, want at least 30ms of pacing", elapsed)
	}
}

func TestLimiter_WaitContextCancelled(t *testing.T) {
	limiter := New(1, 1)
	limiter.Allow() // drain the burst so the next Wait must block

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Error("Wait() = nil with cancelled context, want error")
	}
}

func TestLimiter_WaitContextDeadline(t *testing.T) {
	limiter := New(0.1, 1)
	limiter.Allow() // next token is ~10s away

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.Wait(ctx)
	elapsed := time.Since(start)

	if err == nil {
		t.Error("Wait() = nil, want error when the deadline cannot be met")
	}
	if elapsed > time.Second {
		t.Errorf("Wait() blocked %v, want prompt return on hopeless deadline", elapsed)
	}
}
