package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatra/pkg/memcache"
	"yatra/pkg/utils"
)

// RateLimitMiddleware enforces one token bucket per client IP.
func RateLimitMiddleware(visitors memcache.VisitorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !visitors.Limiter(ip).Allow() {
			zap.L().Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", c.FullPath()))
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
