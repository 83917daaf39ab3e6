package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures rate limiting behavior
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// limiterMap stores rate limiters per client IP
type limiterMap struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	config   RateLimiterConfig
}

func newLimiterMap(config RateLimiterConfig) *limiterMap {
	lm := &limiterMap{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
	}
	go lm.cleanup()
	return lm
}

func (lm *limiterMap) get(ip string) *rate.Limiter {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	limiter, exists := lm.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(lm.config.RequestsPerSecond), lm.config.Burst)
		lm.limiters[ip] = limiter
	}
	return limiter
}

// cleanup bounds the map so long-running processes don't accumulate one
// limiter per client forever
func (lm *limiterMap) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		lm.mu.Lock()
		if len(lm.limiters) > 1000 {
			lm.limiters = make(map[string]*rate.Limiter)
		}
		lm.mu.Unlock()
	}
}

// RateLimiter creates a per-IP rate limiting middleware
func RateLimiter(config RateLimiterConfig) gin.HandlerFunc {
	limiters := newLimiterMap(config)

	return func(c *gin.Context) {
		limiter := limiters.get(c.ClientIP())
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
