package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/redis"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// RateLimit allows limit requests per window and client IP on a route.
// The Redis sliding window is shared across instances; without Redis, or
// while it is failing, per-process token buckets apply instead.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	local := newIPLimiter(limit, window)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if rdb != nil {
			key := fmt.Sprintf("rate_limit:%s:%s", ip, c.FullPath())
			allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
			if err == nil {
				if !allowed {
					tooManyRequests(c)
					return
				}
				c.Next()
				return
			}
		}

		if !local.allow(ip) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	response.Error(c, http.StatusTooManyRequests, 10004, "too many requests, try again later")
	c.Abort()
}

// ── in-process fallback ──

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu      sync.Mutex
	entries map[string]*ipEntry
	every   rate.Limit
	burst   int
	idle    time.Duration
	sweeps  int
}

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &ipLimiter{
		entries: make(map[string]*ipEntry),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    window,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = now

	// drop idle clients now and then so the map does not grow without bound
	l.sweeps++
	if l.sweeps >= 1024 {
		l.sweeps = 0
		for k, v := range l.entries {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.entries, k)
			}
		}
	}

	return e.limiter.AllowN(now, 1)
}
