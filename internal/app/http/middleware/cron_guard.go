package middleware

import (
	"crypto/subtle"
	"net/http"

	"homefinder-api/config"

	"github.com/gin-gonic/gin"
)

// RequireCronSecret authenticates scheduled-job endpoints via a shared
// secret header; these routes have no session auth.
func RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.CRON_SECRET == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "CRON_SECRET not configured"})
			return
		}

		got := c.GetHeader("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(config.CRON_SECRET)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
			return
		}

		c.Next()
	}
}
