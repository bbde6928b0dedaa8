package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/config"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/httputil"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/redis"
	"github.com/rishi-ann/redlix-portal/internal/service"
)

// Limiter is satisfied by service.RateLimiter.
type Limiter interface {
	Attempt(ctx context.Context, key string, limit int, window time.Duration) service.LimitDecision
}

// LoginRateLimiter throttles login attempts per client IP. The IP is taken
// from RemoteAddr, which chi's RealIP middleware has already resolved.
type LoginRateLimiter struct {
	limiter Limiter
	role    model.Role
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewLoginRateLimiter(limiter Limiter, role model.Role) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: limiter,
		role:    role,
		limit:   config.LoginRateLimit,
		window:  config.LoginRateWindow,
		now:     time.Now,
	}
}

func (l *LoginRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		decision := l.limiter.Attempt(r.Context(), redis.LoginRateKey(ip), l.limit, l.window)
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			log.Warn().Str("ip", ip).Str("role", string(l.role)).Msg("login rate limit exceeded")
			metrics.LoginsTotal.WithLabelValues(string(l.role), "throttled").Inc()

			secondsLeft := int(decision.ResetAt.Sub(l.now()).Seconds()) + 1
			if secondsLeft < 1 {
				secondsLeft = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secondsLeft))
			httputil.WriteError(w, apperrors.RateLimitExceeded())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
