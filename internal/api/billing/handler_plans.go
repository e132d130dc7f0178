package billing

import (
	"net/http"

	"homefinder-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /plans
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, billing.Plans())
}

// GET /promotion-tiers
func ListPromotionTiers(c *gin.Context) {
	c.JSON(http.StatusOK, billing.PromotionTiers())
}
