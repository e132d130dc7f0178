package maintenance

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&users.User{}, &properties.Property{}))
	database.DB = db
}

func seedProperty(t *testing.T, featured bool, until *time.Time) properties.Property {
	t.Helper()
	prop := properties.Property{
		OwnerID:       1,
		Title:         "Listing",
		Status:        properties.StatusApproved,
		Featured:      featured,
		FeaturedUntil: until,
	}
	require.NoError(t, database.DB.Create(&prop).Error)
	return prop
}

func TestExpireFeaturedListings(t *testing.T) {
	setupDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(48 * time.Hour)

	expired := seedProperty(t, true, &past)
	current := seedProperty(t, true, &future)
	plain := seedProperty(t, false, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/internal/expire-featured", ExpireFeaturedListings)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal/expire-featured", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expired":1`)

	var got properties.Property
	require.NoError(t, database.DB.First(&got, expired.ID).Error)
	assert.False(t, got.Featured)
	assert.Nil(t, got.FeaturedUntil)

	got = properties.Property{}
	require.NoError(t, database.DB.First(&got, current.ID).Error)
	assert.True(t, got.Featured, "a live placement must survive the sweep")

	got = properties.Property{}
	require.NoError(t, database.DB.First(&got, plain.ID).Error)
	assert.False(t, got.Featured)

	// Idempotent: a second run immediately after matches nothing.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal/expire-featured", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expired":0`)
}
