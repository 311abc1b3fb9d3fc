package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow(1) {
			t.Fatalf("Allow() = false on request %d, want true", i+1)
		}
	}

	if rl.Allow(1) {
		t.Error("Allow() = true past the limit, want false")
	}
}

func TestRateLimiter_UsersAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.Allow(1) {
		t.Fatal("Allow(1) = false on first request")
	}
	if !rl.Allow(2) {
		t.Error("Allow(2) = false although user 2 made no requests")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow(1) {
		t.Fatal("Allow() = false on first request")
	}
	if rl.Allow(1) {
		t.Fatal("Allow() = true past the limit")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.Allow(1) {
		t.Error("Allow() = false after window reset, want true")
	}
}
