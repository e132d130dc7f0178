package reviews

import (
	"time"

	"homefinder-api/internal/domain/users"
)

type Review struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	PropertyID uint       `gorm:"index" json:"property_id"`
	UserID     uint       `gorm:"index" json:"user_id"`
	User       users.User `json:"-"`
	Rating     int        `gorm:"not null" json:"rating"` // 1..5
	Body       string     `gorm:"type:text" json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
}
