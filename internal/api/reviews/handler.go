package reviews

import (
	"net/http"
	"strconv"

	"homefinder-api/database"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/reviews"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// POST /properties/:id/reviews
func CreateReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var input struct {
		Rating int    `json:"rating" binding:"required,min=1,max=5"`
		Body   string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ?", uint(propID)).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if prop.OwnerID == userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot review your own listing"})
		return
	}

	review := reviews.Review{
		PropertyID: prop.ID,
		UserID:     userID,
		Rating:     input.Rating,
		Body:       ugcPolicy.Sanitize(input.Body),
	}

	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GET /properties/:id/reviews
func ListReviews(c *gin.Context) {
	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var list []reviews.Review
	if err := database.DB.
		Where("property_id = ?", uint(propID)).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// DELETE /reviews/:id — author or admin.
func DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	var review reviews.Review
	if err := database.DB.Where("id = ?", uint(reviewID)).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	userID := c.GetUint("user_id")
	if review.UserID != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the review author"})
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
