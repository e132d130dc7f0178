package admin

import (
	"net/http"

	"homefinder-api/database"
	"homefinder-api/internal/domain/users"
	"homefinder-api/internal/infra/mailer"

	"github.com/gin-gonic/gin"
)

// POST /admin/broadcast {subject, body}
//
// Queues one email per user. Sends are fire-and-forget; per-recipient
// failures are logged by the mailer and never surface here.
func BroadcastEmail(c *gin.Context) {
	var input struct {
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recipients []users.User
	if err := database.DB.Where("is_verified = ?", true).Find(&recipients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipients"})
		return
	}

	for _, u := range recipients {
		mailer.Submit(u.Email, input.Subject, input.Body)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Broadcast submitted",
		"submitted": len(recipients),
	})
}
