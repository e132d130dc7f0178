package properties

import (
	"net/http"
	"strconv"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"
	"homefinder-api/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

// Listings allowed without an active subscription.
const freeListingLimit = 2

type propertyInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=house apartment land commercial"`
	ListingType string  `json:"listing_type" binding:"required,oneof=sale rent"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	City        string  `json:"city" binding:"required"`
	Address     string  `json:"address"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	AreaSqm     float64 `json:"area_sqm"`
}

// POST /properties
func CreateProperty(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.Subscription.IsActive(time.Now()) {
		var active int64
		database.DB.Model(&properties.Property{}).
			Where("owner_id = ? AND status != ?", userID, properties.StatusRejected).
			Count(&active)
		if active >= freeListingLimit {
			c.JSON(http.StatusForbidden, gin.H{"error": "Free accounts are limited to 2 listings. Subscribe to add more."})
			return
		}
	}

	prop := properties.Property{
		OwnerID:     userID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		ListingType: input.ListingType,
		Price:       input.Price,
		Currency:    currencyOrDefault(c),
		City:        input.City,
		Address:     input.Address,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		AreaSqm:     input.AreaSqm,
		Status:      properties.StatusPending,
	}

	if err := database.DB.Create(&prop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, prop)
}

// PUT /properties/:id
func UpdateProperty(c *gin.Context) {
	prop, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":        input.Title,
		"description":  input.Description,
		"type":         input.Type,
		"listing_type": input.ListingType,
		"price":        input.Price,
		"city":         input.City,
		"address":      input.Address,
		"bedrooms":     input.Bedrooms,
		"bathrooms":    input.Bathrooms,
		"area_sqm":     input.AreaSqm,
		// edits go back through moderation
		"status": properties.StatusPending,
	}

	if err := database.DB.Model(&properties.Property{}).
		Where("id = ?", prop.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property updated"})
}

// DELETE /properties/:id
func DeleteProperty(c *gin.Context) {
	prop, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&properties.Property{}, prop.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// GET /properties/:id
func GetPropertyByID(c *gin.Context) {
	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var prop properties.Property
	if err := database.DB.Preload("Images").Where("id = ?", uint(propID)).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if cache.Enabled() {
		prop.Views = cache.IncrPropertyViews(c.Request.Context(), prop.ID)
	} else {
		database.DB.Model(&properties.Property{}).
			Where("id = ?", prop.ID).
			Update("views", prop.Views+1)
		prop.Views++
	}

	c.JSON(http.StatusOK, prop)
}

// GET /properties
//
// Public search over approved listings. Featured properties with a live
// placement window sort first.
func ListProperties(c *gin.Context) {
	q := database.DB.Model(&properties.Property{}).
		Where("status = ?", properties.StatusApproved)

	if city := c.Query("city"); city != "" {
		q = q.Where("city = ?", city)
	}
	if ptype := c.Query("type"); ptype != "" {
		q = q.Where("type = ?", ptype)
	}
	if listing := c.Query("listing_type"); listing != "" {
		q = q.Where("listing_type = ?", listing)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			q = q.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("price <= ?", v)
		}
	}
	if beds := c.Query("bedrooms"); beds != "" {
		if v, err := strconv.Atoi(beds); err == nil {
			q = q.Where("bedrooms >= ?", v)
		}
	}

	var props []properties.Property
	if err := q.
		Order("featured DESC, created_at DESC").
		Preload("Images").
		Find(&props).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load properties"})
		return
	}

	c.JSON(http.StatusOK, props)
}

// GET /properties/:id/stats — owner analytics, subscribers only.
func GetPropertyStats(c *gin.Context) {
	prop, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	views := prop.Views
	if cache.Enabled() {
		views = cache.PropertyViews(c.Request.Context(), prop.ID)
	}

	var favoriteCount int64
	database.DB.Table("favorites").Where("property_id = ?", prop.ID).Count(&favoriteCount)

	var visitCount int64
	database.DB.Table("visit_requests").Where("property_id = ?", prop.ID).Count(&visitCount)

	c.JSON(http.StatusOK, gin.H{
		"property_id":    prop.ID,
		"views":          views,
		"favorites":      favoriteCount,
		"visit_requests": visitCount,
		"featured":       prop.Featured,
		"featured_until": prop.FeaturedUntil,
	})
}

// GET /my/properties
func ListOwnProperties(c *gin.Context) {
	userID := c.GetUint("user_id")

	var props []properties.Property
	if err := database.DB.
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Preload("Images").
		Find(&props).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load properties"})
		return
	}

	c.JSON(http.StatusOK, props)
}

// loadOwnedProperty resolves :id and enforces ownership (admin passes).
func loadOwnedProperty(c *gin.Context) (properties.Property, bool) {
	var prop properties.Property

	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return prop, false
	}

	if err := database.DB.Where("id = ?", uint(propID)).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return prop, false
	}

	userID := c.GetUint("user_id")
	if prop.OwnerID != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the listing owner"})
		return prop, false
	}

	return prop, true
}

func currencyOrDefault(c *gin.Context) string {
	if cur := c.Query("currency"); cur != "" {
		return cur
	}
	return "usd"
}
