package notifications

import "time"

const (
	TypeVisitRequested = "visit_requested"
	TypeVisitResponded = "visit_responded"
	TypeListingReview  = "listing_review"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Read      bool      `gorm:"index" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
