package billing

import (
	"time"

	"homefinder-api/internal/domain/users"
)

const (
	PaymentTypeSubscription    = "subscription"
	PaymentTypeFeaturedListing = "featured_listing"

	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is an append-only ledger entry, written once per processed Stripe
// event. Rows are never updated in place.
type Payment struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Type   string     `gorm:"index" json:"type"`
	UserID uint       `gorm:"index" json:"user_id"`
	User   users.User `json:"-"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`

	StripeSessionID       *string `gorm:"column:stripe_session_id" json:"-"`
	StripePaymentIntentID *string `gorm:"column:stripe_payment_intent_id" json:"-"`

	PropertyID *uint      `gorm:"index" json:"property_id,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
