package billing

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// GET /billing/checkout/status?session_id=...
//
// Read-only confirmation for the client UI after the redirect back. The
// webhook stays the authority for entitlements.
func CheckoutStatus(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	s, err := checkoutsession.Get(sessionID, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return
	}

	customerEmail := ""
	if s.CustomerDetails != nil {
		customerEmail = s.CustomerDetails.Email
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         s.Status,
		"customer_email": customerEmail,
	})
}
