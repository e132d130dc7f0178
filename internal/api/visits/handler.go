package visits

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/notifications"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"
	"homefinder-api/internal/domain/visits"
	"homefinder-api/internal/infra/mailer"

	"github.com/gin-gonic/gin"
)

// POST /properties/:id/visits
//
// Creates the visit row and notifies the owner. The email is submitted
// fire-and-forget: a delivery failure never fails the request.
func CreateVisitRequest(c *gin.Context) {
	userID := c.GetUint("user_id")

	propID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var input struct {
		VisitDate time.Time `json:"visit_date" binding:"required"`
		Message   string    `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.VisitDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Visit date must be in the future"})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ?", uint(propID)).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if prop.OwnerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You own this listing"})
		return
	}

	visit := visits.VisitRequest{
		PropertyID:  prop.ID,
		RequesterID: userID,
		VisitDate:   input.VisitDate,
		Message:     input.Message,
		Status:      visits.StatusRequested,
	}
	if err := database.DB.Create(&visit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create visit request"})
		return
	}

	notif := notifications.Notification{
		UserID: prop.OwnerID,
		Type:   notifications.TypeVisitRequested,
		Title:  "New visit request",
		Body:   fmt.Sprintf("Someone requested a visit to %q on %s.", prop.Title, input.VisitDate.Format("Jan 2, 2006")),
	}
	database.DB.Create(&notif)

	var owner users.User
	if err := database.DB.Where("id = ?", prop.OwnerID).First(&owner).Error; err == nil {
		mailer.Submit(owner.Email, "New visit request for your listing",
			fmt.Sprintf(`<p>A visit to <strong>%s</strong> was requested for %s.</p><p>Log in to confirm or decline.</p>`,
				prop.Title, input.VisitDate.Format("Jan 2, 2006")))
	}

	c.JSON(http.StatusCreated, visit)
}

// GET /my/visits — visit requests for the caller's listings.
func ListVisitsForOwner(c *gin.Context) {
	userID := c.GetUint("user_id")

	var list []visits.VisitRequest
	if err := database.DB.
		Joins("JOIN properties ON properties.id = visit_requests.property_id").
		Where("properties.owner_id = ?", userID).
		Order("visit_requests.created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visit requests"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /visits/:id/respond {status: confirmed|declined}
func RespondToVisit(c *gin.Context) {
	visitID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required,oneof=confirmed declined"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var visit visits.VisitRequest
	if err := database.DB.Preload("Property").Where("id = ?", uint(visitID)).First(&visit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Visit request not found"})
		return
	}

	if visit.Property.OwnerID != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the listing owner"})
		return
	}

	if visit.Status != visits.StatusRequested {
		c.JSON(http.StatusConflict, gin.H{"error": "Visit request already handled"})
		return
	}

	if err := database.DB.Model(&visit).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update visit request"})
		return
	}

	notif := notifications.Notification{
		UserID: visit.RequesterID,
		Type:   notifications.TypeVisitResponded,
		Title:  "Visit request " + input.Status,
		Body:   fmt.Sprintf("Your visit request for %q was %s.", visit.Property.Title, input.Status),
	}
	database.DB.Create(&notif)

	var requester users.User
	if err := database.DB.Where("id = ?", visit.RequesterID).First(&requester).Error; err == nil {
		mailer.Submit(requester.Email, "Your visit request was "+input.Status,
			fmt.Sprintf(`<p>Your visit request for <strong>%s</strong> on %s was %s.</p>`,
				visit.Property.Title, visit.VisitDate.Format("Jan 2, 2006"), input.Status))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit request " + input.Status})
}
