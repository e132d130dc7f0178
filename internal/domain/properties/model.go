package properties

import (
	"time"

	"homefinder-api/internal/domain/users"
)

// Moderation states. New listings start as pending and only approved ones
// show up in public search.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	ListingSale = "sale"
	ListingRent = "rent"
)

type Property struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	OwnerID uint       `gorm:"index" json:"owner_id"`
	Owner   users.User `json:"-"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Type        string  `gorm:"index" json:"type"` // house | apartment | land | commercial
	ListingType string  `gorm:"index" json:"listing_type"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`

	City      string  `gorm:"index" json:"city"`
	Address   string  `json:"address"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqm   float64 `json:"area_sqm"`

	Status          string  `gorm:"index;default:'pending'" json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	// Featured placement bought through the promotion checkout; cleared by
	// the expiry sweep once FeaturedUntil has passed.
	Featured      bool       `gorm:"index" json:"featured"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`

	Views int64 `json:"views"`

	Images []PropertyImage `json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index" json:"property_id"`
	ObjectKey  string    `gorm:"not null" json:"-"`
	URL        string    `gorm:"not null" json:"url"`
	IsCover    bool      `json:"is_cover"`
	CreatedAt  time.Time `json:"created_at"`
}
