package middleware

import (
	"net/http"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates paid features (listing analytics) on the
// subscription sub-record the webhook maintains.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if user.Subscription.Status == "" || user.Subscription.ExpiresAt == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription required",
			})
			return
		}

		if !user.Subscription.IsActive(time.Now()) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
			return
		}

		c.Next()
	}
}
