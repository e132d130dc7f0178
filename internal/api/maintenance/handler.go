package maintenance

import (
	"net/http"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /internal/expire-featured
//
// Called by the scheduler. Clears featured placement wherever the paid
// window has passed; rerunning immediately matches zero rows.
func ExpireFeaturedListings(c *gin.Context) {
	res := database.DB.Model(&properties.Property{}).
		Where("featured = ? AND featured_until IS NOT NULL AND featured_until < ?", true, time.Now()).
		Updates(map[string]interface{}{
			"featured":       false,
			"featured_until": nil,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to expire featured listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": res.RowsAffected})
}
