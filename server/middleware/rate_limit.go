package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinUploadLimitMiddleware limits how many uploads the server accepts per
// minute. The burst equals the per-minute budget so short bursts pass and
// the limiter only throttles sustained traffic. perMinute <= 0 disables
// the limit.
func GinUploadLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			slog.Warn("Upload rate limit exceeded",
				"request_id", GetRequestIDFromGin(c),
				"client_ip", c.ClientIP(),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "업로드 요청이 너무 많습니다. 잠시 후 다시 시도해 주세요",
			})
			return
		}

		c.Next()
	}
}
