package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// VoteLimiter throttles how fast one account may cast or flip votes.
// A nil limiter or a non-positive budget disables throttling entirely,
// which is the behavior when Redis is not configured.
type VoteLimiter struct {
	limiter   RateLimiter
	perMinute int
}

func NewVoteLimiter(limiter RateLimiter, perMinute int) *VoteLimiter {
	return &VoteLimiter{
		limiter:   limiter,
		perMinute: perMinute,
	}
}

func (l *VoteLimiter) Allow(ctx context.Context, userID uint) (bool, error) {
	if l.limiter == nil || l.perMinute <= 0 {
		return true, nil
	}
	return l.limiter.Allow(ctx, fmt.Sprintf("vote:%d", userID), l.perMinute, time.Minute)
}
