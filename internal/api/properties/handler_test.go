package properties

import (
	"bytes"
	"encoding/json"
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

	require.NoError(t, db.AutoMigrate(&users.User{}, &properties.Property{}, &properties.PropertyImage{}))
	database.DB = db
}

func authedRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.POST("/properties", CreateProperty)
	r.GET("/properties", ListProperties)
	return r
}

func validListing(title string) []byte {
	b, _ := json.Marshal(map[string]interface{}{
		"title":        title,
		"type":         "apartment",
		"listing_type": "rent",
		"price":        1200.0,
		"city":         "Lisbon",
		"bedrooms":     2,
	})
	return b
}

func postListing(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePropertyStartsPending(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&user).Error)

	w := postListing(authedRouter(user.ID), validListing("Loft"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var prop properties.Property
	require.NoError(t, database.DB.First(&prop).Error)
	assert.Equal(t, properties.StatusPending, prop.Status)
	assert.Equal(t, user.ID, prop.OwnerID)
}

func TestCreatePropertyFreeCap(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&user).Error)
	r := authedRouter(user.ID)

	require.Equal(t, http.StatusCreated, postListing(r, validListing("First")).Code)
	require.Equal(t, http.StatusCreated, postListing(r, validListing("Second")).Code)

	w := postListing(r, validListing("Third"))
	assert.Equal(t, http.StatusForbidden, w.Code, "free accounts stop at two listings")

	var n int64
	database.DB.Model(&properties.Property{}).Count(&n)
	assert.EqualValues(t, 2, n)
}

func TestCreatePropertyCapLiftedBySubscription(t *testing.T) {
	setupDB(t)

	expires := time.Now().AddDate(0, 1, 0)
	user := users.User{
		Name: "Ana", Email: "ana@example.com", IsVerified: true,
		Subscription: users.Subscription{
			PlanType:  "pro",
			Status:    users.SubscriptionActive,
			ExpiresAt: &expires,
		},
	}
	require.NoError(t, database.DB.Create(&user).Error)
	r := authedRouter(user.ID)

	for _, title := range []string{"First", "Second", "Third", "Fourth"} {
		require.Equal(t, http.StatusCreated, postListing(r, validListing(title)).Code)
	}
}

func TestCreatePropertyRejectedDontCountTowardCap(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&user).Error)

	for i := 0; i < 2; i++ {
		require.NoError(t, database.DB.Create(&properties.Property{
			OwnerID: user.ID,
			Title:   "Rejected",
			Status:  properties.StatusRejected,
		}).Error)
	}

	w := postListing(authedRouter(user.ID), validListing("Fresh"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestListPropertiesFiltersAndFeaturedFirst(t *testing.T) {
	setupDB(t)

	until := time.Now().Add(72 * time.Hour)
	seed := []properties.Property{
		{OwnerID: 1, Title: "Plain", City: "Lisbon", Type: "apartment", ListingType: "rent", Price: 1000, Status: properties.StatusApproved},
		{OwnerID: 1, Title: "Promoted", City: "Lisbon", Type: "apartment", ListingType: "rent", Price: 1500, Status: properties.StatusApproved, Featured: true, FeaturedUntil: &until},
		{OwnerID: 1, Title: "Hidden", City: "Lisbon", Type: "apartment", ListingType: "rent", Price: 900, Status: properties.StatusPending},
		{OwnerID: 1, Title: "Elsewhere", City: "Porto", Type: "house", ListingType: "sale", Price: 250000, Status: properties.StatusApproved},
	}
	for i := range seed {
		require.NoError(t, database.DB.Create(&seed[i]).Error)
	}

	r := authedRouter(0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties?city=Lisbon", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []properties.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2, "pending and other-city listings stay out of search")
	assert.Equal(t, "Promoted", got[0].Title, "featured listings sort first")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties?listing_type=sale", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Elsewhere", got[0].Title)
}
