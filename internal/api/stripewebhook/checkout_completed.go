package stripewebhooks

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"homefinder-api/config"
	"homefinder-api/database"
	"homefinder-api/internal/domain/billing"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleCheckoutSessionCompleted routes a completed checkout to the
// subscription or promotion path based on the metadata the initiators set.
// Metadata that matches neither is acknowledged so Stripe stops retrying.
func handleCheckoutSessionCompleted(eventID string, session *stripe.CheckoutSession) error {
	md := session.Metadata
	if md == nil {
		log.Printf("webhook: checkout session %s has no metadata, ignoring", session.ID)
		return nil
	}

	if planID := md["plan_id"]; planID != "" {
		return applySubscriptionPurchase(eventID, session, planID)
	}

	if propID := md["property_id"]; propID != "" && md["days"] != "" {
		return applyPromotionPurchase(eventID, session, propID, md["days"])
	}

	log.Printf("webhook: checkout session %s carries no entitlement metadata, ignoring", session.ID)
	return nil
}

// applySubscriptionPurchase writes the user's subscription sub-record and
// appends the ledger entry in one transaction.
func applySubscriptionPurchase(eventID string, session *stripe.CheckoutSession, planID string) error {
	userID, err := userIDFromMetadata(session.Metadata, session.ClientReferenceID)
	if err != nil {
		log.Printf("webhook: checkout session %s: %v, ignoring", session.ID, err)
		return nil
	}

	plan, ok := billing.LookupPlan(planID)
	if !ok {
		log.Printf("webhook: checkout session %s references unknown plan %q, ignoring", session.ID, planID)
		return nil
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		// acknowledge to avoid Stripe retries if the user was deleted
		log.Printf("webhook: user %d not found for session %s, ignoring", userID, session.ID)
		return nil
	}

	expires := plan.ExpiryFrom(time.Now())

	updates := map[string]interface{}{
		"subscription_plan_type":  plan.ID,
		"subscription_status":     users.SubscriptionActive,
		"subscription_expires_at": expires,
	}
	if session.Subscription != nil && session.Subscription.ID != "" {
		updates["subscription_stripe_subscription_id"] = session.Subscription.ID
	}

	payment := billing.Payment{
		Type:            billing.PaymentTypeSubscription,
		UserID:          user.ID,
		Amount:          float64(session.AmountTotal) / 100,
		Currency:        sessionCurrency(session),
		Status:          billing.PaymentStatusCompleted,
		StripeSessionID: &session.ID,
		ExpiresAt:       &expires,
	}
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		payment.StripePaymentIntentID = &session.PaymentIntent.ID
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return markProcessed(tx, eventID, "checkout.session.completed")
	})
}

// applyPromotionPurchase flags the property featured until now+days and
// appends the ledger entry, transactionally.
func applyPromotionPurchase(eventID string, session *stripe.CheckoutSession, propIDStr, daysStr string) error {
	propID64, err := strconv.ParseUint(propIDStr, 10, 64)
	if err != nil {
		log.Printf("webhook: checkout session %s has invalid property_id %q, ignoring", session.ID, propIDStr)
		return nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		log.Printf("webhook: checkout session %s has invalid days %q, ignoring", session.ID, daysStr)
		return nil
	}

	userID, err := userIDFromMetadata(session.Metadata, session.ClientReferenceID)
	if err != nil {
		log.Printf("webhook: checkout session %s: %v, ignoring", session.ID, err)
		return nil
	}

	var prop properties.Property
	if err := database.DB.Where("id = ?", uint(propID64)).First(&prop).Error; err != nil {
		log.Printf("webhook: property %d not found for session %s, ignoring", propID64, session.ID)
		return nil
	}

	featuredUntil := time.Now().AddDate(0, 0, days)
	propertyID := prop.ID

	payment := billing.Payment{
		Type:            billing.PaymentTypeFeaturedListing,
		UserID:          userID,
		Amount:          float64(session.AmountTotal) / 100,
		Currency:        sessionCurrency(session),
		Status:          billing.PaymentStatusCompleted,
		StripeSessionID: &session.ID,
		PropertyID:      &propertyID,
		ExpiresAt:       &featuredUntil,
	}
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		payment.StripePaymentIntentID = &session.PaymentIntent.ID
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&properties.Property{}).
			Where("id = ?", prop.ID).
			Updates(map[string]interface{}{
				"featured":       true,
				"featured_until": featuredUntil,
			}).Error; err != nil {
			return fmt.Errorf("failed to feature property: %w", err)
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return markProcessed(tx, eventID, "checkout.session.completed")
	})
}

func markProcessed(tx *gorm.DB, eventID, eventType string) error {
	if err := tx.Create(&billing.ProcessedEvent{EventID: eventID, Type: eventType}).Error; err != nil {
		return fmt.Errorf("failed to record processed event: %w", err)
	}
	return nil
}

func userIDFromMetadata(md map[string]string, clientRef string) (uint, error) {
	userIDStr := ""
	if md != nil {
		userIDStr = md["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, fmt.Errorf("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

func sessionCurrency(session *stripe.CheckoutSession) string {
	if session.Currency != "" {
		return string(session.Currency)
	}
	return config.CURRENCY
}
