package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/response"
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	limit  int
	window time.Duration
	hits   *cache.Cache
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		hits:   cache.New(window, 2*window),
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *RateLimiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	// Add only succeeds for the first hit of a window, which also starts its expiry.
	if err := l.hits.Add(key, 1, l.window); err == nil {
		return true
	}

	n, err := l.hits.IncrementInt(key, 1)
	if err != nil {
		// The window expired between Add and IncrementInt.
		l.hits.Set(key, 1, l.window)
		return true
	}

	return n <= l.limit
}

func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP()) {
			response.RenderErr(ctx, response.ErrTooManyRequests())
			return
		}

		ctx.Next()
	}
}
