package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"homefinder-api/database"
	"homefinder-api/internal/domain/notifications"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"
	"homefinder-api/internal/infra/mailer"

	"github.com/gin-gonic/gin"
)

// GET /admin/properties/pending
func ListPendingProperties(c *gin.Context) {
	var props []properties.Property
	if err := database.DB.
		Where("status = ?", properties.StatusPending).
		Order("created_at ASC").
		Preload("Images").
		Find(&props).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pending properties"})
		return
	}
	c.JSON(http.StatusOK, props)
}

// POST /admin/properties/:id/approve
func ApproveProperty(c *gin.Context) {
	prop, ok := loadProperty(c)
	if !ok {
		return
	}

	if err := database.DB.Model(&properties.Property{}).
		Where("id = ?", prop.ID).
		Updates(map[string]interface{}{
			"status":           properties.StatusApproved,
			"rejection_reason": nil,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve property"})
		return
	}

	notifyOwner(prop, "Listing approved",
		fmt.Sprintf("Your listing %q is now live.", prop.Title))

	c.JSON(http.StatusOK, gin.H{"message": "Property approved"})
}

// POST /admin/properties/:id/reject {reason}
func RejectProperty(c *gin.Context) {
	prop, ok := loadProperty(c)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing rejection reason"})
		return
	}

	if err := database.DB.Model(&properties.Property{}).
		Where("id = ?", prop.ID).
		Updates(map[string]interface{}{
			"status":           properties.StatusRejected,
			"rejection_reason": body.Reason,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject property"})
		return
	}

	notifyOwner(prop, "Listing rejected",
		fmt.Sprintf("Your listing %q was rejected: %s", prop.Title, body.Reason))

	c.JSON(http.StatusOK, gin.H{"message": "Property rejected"})
}

func loadProperty(c *gin.Context) (properties.Property, bool) {
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

	return prop, true
}

func notifyOwner(prop properties.Property, title, body string) {
	notif := notifications.Notification{
		UserID: prop.OwnerID,
		Type:   notifications.TypeListingReview,
		Title:  title,
		Body:   body,
	}
	database.DB.Create(&notif)

	var owner users.User
	if err := database.DB.Where("id = ?", prop.OwnerID).First(&owner).Error; err == nil {
		mailer.Submit(owner.Email, title, "<p>"+body+"</p>")
	}
}
