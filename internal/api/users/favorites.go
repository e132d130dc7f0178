package users

import (
	"net/http"
	"strconv"

	"homefinder-api/database"
	"homefinder-api/internal/domain/favorites"
	"homefinder-api/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /properties/:id/favorite
func AddFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")
	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ?", uint(propID)).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	fav := favorites.Favorite{UserID: userID, PropertyID: prop.ID}
	if err := database.DB.Create(&fav).Error; err != nil {
		// unique index on (user, property): already favorited
		c.JSON(http.StatusOK, gin.H{"message": "Already in favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

// DELETE /properties/:id/favorite
func RemoveFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")
	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	res := database.DB.
		Where("user_id = ? AND property_id = ?", userID, uint(propID)).
		Delete(&favorites.Favorite{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not in favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// GET /favorites
func ListFavorites(c *gin.Context) {
	userID := c.GetUint("user_id")

	var props []properties.Property
	if err := database.DB.
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ?", userID).
		Preload("Images").
		Find(&props).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	c.JSON(http.StatusOK, props)
}
