package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := cfg.PerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = rl.now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Prune drops limiters idle for longer than idle and returns how many were removed.
func (rl *RateLimiter) Prune(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-idle)
	removed := 0
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.NewResponse(http.StatusTooManyRequests, "Too many requests, please try again later"))
			return
		}
		c.Next()
	}
}
