package stripewebhooks

import (
	"fmt"

	"homefinder-api/database"
	"homefinder-api/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleInvoicePaymentFailed suspends the subscription until Stripe reports
// a successful retry or a final cancellation.
func handleInvoicePaymentFailed(eventID string, in *stripe.Invoice) error {
	var user users.User

	if in.SubscriptionDetails != nil {
		if userID := userIDFrom(in.SubscriptionDetails.Metadata); userID != 0 {
			_ = database.DB.Where("id = ?", userID).First(&user).Error
		}
	}
	if user.ID == 0 && in.Subscription != nil && in.Subscription.ID != "" {
		_ = database.DB.Where("subscription_stripe_subscription_id = ?", in.Subscription.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("subscription_status", users.SubscriptionInactive).Error; err != nil {
			return fmt.Errorf("failed to suspend subscription: %w", err)
		}
		return markProcessed(tx, eventID, "invoice.payment_failed")
	})
}
