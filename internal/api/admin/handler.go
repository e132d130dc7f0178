package admin

import (
	"net/http"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/billing"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Lastname         string     `json:"lastname"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	IsVerified       bool       `json:"is_verified"`
	PlanType         string     `json:"plan_type,omitempty"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
}

type AdminPayment struct {
	ID         uint       `json:"id"`
	Email      string     `json:"email"`
	Type       string     `json:"type"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	PropertyID *uint      `json:"property_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var totalUsers int64
	database.DB.Model(&users.User{}).Count(&totalUsers)

	var totalListings int64
	database.DB.Model(&properties.Property{}).Count(&totalListings)

	var pendingListings int64
	database.DB.Model(&properties.Property{}).
		Where("status = ?", properties.StatusPending).
		Count(&pendingListings)

	var totalRevenue float64
	database.DB.Model(&billing.Payment{}).
		Where("status = ?", billing.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	var recentRevenue float64
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at > ?", billing.PaymentStatusCompleted, time.Now().AddDate(0, -1, 0)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&recentRevenue)

	type planRow struct {
		PlanType string
		Count    int64
	}
	var perPlan []planRow
	database.DB.Model(&users.User{}).
		Select("subscription_plan_type AS plan_type, COUNT(*) AS count").
		Where("subscription_status = ?", users.SubscriptionActive).
		Group("subscription_plan_type").
		Scan(&perPlan)

	usersPerPlan := map[string]int64{}
	for _, row := range perPlan {
		usersPerPlan[row.PlanType] = row.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":      totalUsers,
		"total_listings":   totalListings,
		"pending_listings": pendingListings,
		"total_revenue":    totalRevenue,
		"recent_revenue":   recentRevenue,
		"users_per_plan":   usersPerPlan,
	})
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Lastname:         u.Lastname,
			Email:            u.Email,
			Role:             u.Role,
			IsVerified:       u.IsVerified,
			PlanType:         u.Subscription.PlanType,
			SubscriptionEnd:  u.Subscription.ExpiresAt,
			StripeCustomerID: u.StripeCustomerID,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// GET /admin/payments
func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.
		Preload("User").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		out = append(out, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			Type:       p.Type,
			Amount:     p.Amount,
			Currency:   p.Currency,
			Status:     p.Status,
			PropertyID: p.PropertyID,
			CreatedAt:  p.CreatedAt,
			ExpiresAt:  p.ExpiresAt,
		})
	}

	c.JSON(http.StatusOK, out)
}
