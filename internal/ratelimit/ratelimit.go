package ratelimit

import (
	"sync"
	"time"

	"finbrief/internal/logger"
)

// RequestLimiter caps outbound API requests inside a rolling daily
// window. NewsAPI's free tier allows 100 requests per day, so the
// budget is enforced client-side before every call instead of waiting
// for 429 responses.
type RequestLimiter struct {
	mu        sync.Mutex
	count     int
	max       int
	resetTime time.Time
}

// NewRequestLimiter creates a limiter with the given daily budget.
// max <= 0 disables the limit.
func NewRequestLimiter(max int) *RequestLimiter {
	return &RequestLimiter{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// Allow records one request against the budget and reports whether it
// may proceed.
func (rl *RequestLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		logger.Warn("api request budget reached", "used", rl.count, "max", rl.max)
		return false
	}

	rl.count++
	return true
}

// Stats returns current usage for logging.
func (rl *RequestLimiter) Stats() (used, max int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.count, rl.max
}

func (rl *RequestLimiter) checkReset() {
	if time.Now().After(rl.resetTime) {
		rl.count = 0
		rl.resetTime = time.Now().Add(24 * time.Hour)
		logger.Debug("api request budget reset")
	}
}
