package favorites

import "time"

type Favorite struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex:idx_favorites_user_property"`
	PropertyID uint `gorm:"uniqueIndex:idx_favorites_user_property;index"`
	CreatedAt  time.Time
}
