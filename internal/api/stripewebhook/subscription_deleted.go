package stripewebhooks

import (
	"fmt"
	"strconv"

	"homefinder-api/database"
	"homefinder-api/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleSubscriptionDeleted marks the user's subscription cancelled. The
// user is found via metadata first, then via the stored subscription id.
func handleSubscriptionDeleted(eventID string, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	var user users.User
	if userID := userIDFrom(sub.Metadata); userID != 0 {
		_ = database.DB.Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Where("subscription_stripe_subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		// acknowledge to avoid Stripe retries if the user was deleted
		return nil
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("subscription_status", users.SubscriptionCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}
		return markProcessed(tx, eventID, "customer.subscription.deleted")
	})
}

func userIDFrom(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
