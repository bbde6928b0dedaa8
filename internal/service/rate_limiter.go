package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// attemptScript trims the window, then records the attempt only if it fits.
// Returns {allowed, attempts in window, reset at (unix ms)}.
var attemptScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = now + window
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    end
    return {0, count, resetAt}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window + 10000)
return {1, count + 1, now + window}
`)

// LimitDecision is the outcome of one attempt against a sliding window.
type LimitDecision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RateLimiter counts attempts per key in a Redis sorted set.
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// Attempt records an attempt under key if fewer than limit attempts fall
// inside the window. Redis failures deny the attempt.
func (rl *RateLimiter) Attempt(ctx context.Context, key string, limit int, window time.Duration) LimitDecision {
	now := rl.now()
	nowMs := now.UnixMilli()
	denied := LimitDecision{ResetAt: now.Add(window)}

	result, err := attemptScript.Run(
		ctx,
		rl.client,
		[]string{key},
		nowMs,
		window.Milliseconds(),
		limit,
		fmt.Sprintf("%d-%s", nowMs, uuid.NewString()),
	).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limit check failed, denying attempt")
		return denied
	}
	if len(result) != 3 {
		log.Warn().Str("key", key).Msg("unexpected rate limit result, denying attempt")
		return denied
	}

	return LimitDecision{
		Allowed:   result[0] == 1,
		Remaining: max(limit-int(result[1]), 0),
		ResetAt:   time.UnixMilli(result[2]),
	}
}
