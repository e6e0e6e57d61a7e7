package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles a route per client IP. onLimited writes the rejection.
func RateLimit(perMinute, burst int, onLimited gin.HandlerFunc) gin.HandlerFunc {
	limiter := newIPRateLimiter(rate.Limit(float64(perMinute)/60), burst, 10*time.Minute)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			onLimited(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// JSONTooManyRequests is the onLimited handler for API routes.
func JSONTooManyRequests(c *gin.Context) {
	HTTPHelper.SendTooManyRequests(c, "too many requests")
}

type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	limit    rate.Limit
	burst    int
	entryTTL time.Duration
}

func newIPRateLimiter(limit rate.Limit, burst int, entryTTL time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		limit:    limit,
		burst:    burst,
		entryTTL: entryTTL,
	}
}

func (l *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, ts := range l.lastSeen {
		if now.Sub(ts) > l.entryTTL {
			delete(l.limiters, key)
			delete(l.lastSeen, key)
		}
	}

	if limiter, ok := l.limiters[ip]; ok {
		l.lastSeen[ip] = now
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters[ip] = limiter
	l.lastSeen[ip] = now
	return limiter
}

func (l *ipRateLimiter) allow(ip string) bool {
	return l.getLimiter(ip).Allow()
}
