package notifications

import (
	"net/http"
	"strconv"

	"homefinder-api/database"
	"homefinder-api/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// GET /notifications
func ListNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	var list []notifications.Notification
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	notifID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	res := database.DB.Model(&notifications.Notification{}).
		Where("id = ? AND user_id = ?", uint(notifID), userID).
		Update("read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}
