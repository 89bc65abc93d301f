package ratelimit

import "testing"

func TestRequestLimiterBudget(t *testing.T) {
	t.Parallel()

	rl := NewRequestLimiter(2)

	if !rl.Allow() || !rl.Allow() {
		t.Fatal("requests within budget were denied")
	}
	if rl.Allow() {
		t.Fatal("request over budget was allowed")
	}

	used, max := rl.Stats()
	if used != 2 || max != 2 {
		t.Fatalf("unexpected stats: used=%d max=%d", used, max)
	}
}

func TestRequestLimiterUnlimited(t *testing.T) {
	t.Parallel()

	rl := NewRequestLimiter(0)
	for i := 0; i < 200; i++ {
		if !rl.Allow() {
			t.Fatalf("unlimited limiter denied request %d", i)
		}
	}
}
