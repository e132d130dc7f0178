package billing

import (
	"net/http"
	"os"

	"homefinder-api/database"
	stripeinfra "homefinder-api/internal/infra/stripe"

	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

// POST /billing/cancel
//
// Cancels the Stripe subscription; the customer.subscription.deleted webhook
// finalizes the local status, so only Stripe is mutated here.
func CancelSubscription(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	sub := user.Subscription
	if sub.StripeSubscriptionID == nil || *sub.StripeSubscriptionID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No active subscription to cancel"})
		return
	}

	cancelled, err := subscription.Cancel(*sub.StripeSubscriptionID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to cancel subscription",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription cancellation requested",
		"status":  stripeinfra.NormalizeStatus(string(cancelled.Status)),
	})
}
