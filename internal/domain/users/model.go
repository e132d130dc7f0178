package users

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionInactive  = "inactive"
)

// Subscription is the entitlement sub-record on the user row. It is written
// only by the Stripe webhook handlers.
type Subscription struct {
	PlanType             string     `gorm:"column:plan_type" json:"plan_type"`
	Status               string     `gorm:"column:status" json:"status"`
	StripeSubscriptionID *string    `gorm:"column:stripe_subscription_id;index" json:"-"`
	ExpiresAt            *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
}

// IsActive reports whether the subscription entitles the user right now.
func (s Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	return s.ExpiresAt != nil && now.Before(*s.ExpiresAt)
}

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `json:"name"`
	Lastname     string  `json:"lastname"`
	Tel          string  `json:"tel"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `json:"role"`
	IsVerified   bool    `json:"is_verified"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id" json:"-"`

	Subscription Subscription `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`

	// LegacyFavoriteIDs holds property ids favorited before the dedicated
	// favorites table existed. New favorites never write here.
	LegacyFavoriteIDs IDList `gorm:"column:legacy_favorite_ids;type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// IDList is a JSON-encoded list of ids stored in a single text column.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for IDList", value)
	}
}
