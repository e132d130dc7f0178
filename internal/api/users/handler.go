package users

import (
	"net/http"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type MeResponse struct {
	ID           uint             `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	Lastname     string           `json:"lastname"`
	Tel          *string          `json:"tel,omitempty"`
	Role         string           `json:"role"`
	IsVerified   bool             `json:"is_verified"`
	Subscription SubscriptionDTO `json:"subscription"`
}

type SubscriptionDTO struct {
	PlanType  string     `json:"plan_type,omitempty"`
	Status    string     `json:"status,omitempty"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := MeResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Lastname:   user.Lastname,
		Tel:        stringPtrIfNotEmpty(user.Tel),
		Role:       user.Role,
		IsVerified: user.IsVerified,
		Subscription: SubscriptionDTO{
			PlanType:  user.Subscription.PlanType,
			Status:    user.Subscription.Status,
			Active:    user.Subscription.IsActive(time.Now()),
			ExpiresAt: user.Subscription.ExpiresAt,
		},
	}

	c.JSON(http.StatusOK, resp)
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
