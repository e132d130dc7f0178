package properties

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"homefinder-api/database"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// POST /properties/:id/photos (multipart, field "photo")
func UploadPhoto(c *gin.Context) {
	prop, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	if !storage.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("properties/%d/%s%s", prop.ID, uuid.NewString(), ext)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := storage.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	var existing int64
	database.DB.Model(&properties.PropertyImage{}).
		Where("property_id = ?", prop.ID).
		Count(&existing)

	img := properties.PropertyImage{
		PropertyID: prop.ID,
		ObjectKey:  key,
		URL:        url,
		IsCover:    existing == 0, // first photo becomes the cover
	}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo record"})
		return
	}

	c.JSON(http.StatusCreated, img)
}
