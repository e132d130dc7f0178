package visits

import (
	"time"

	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"
)

const (
	StatusRequested = "requested"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
)

type VisitRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	PropertyID  uint                `gorm:"index" json:"property_id"`
	Property    properties.Property `json:"-"`
	RequesterID uint                `gorm:"index" json:"requester_id"`
	Requester   users.User          `gorm:"foreignKey:RequesterID" json:"-"`
	VisitDate   time.Time           `json:"visit_date"`
	Message     string              `gorm:"type:text" json:"message"`
	Status      string              `gorm:"index;default:'requested'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}
