package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homefinder-api/config"
	"homefinder-api/database"
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

	require.NoError(t, db.AutoMigrate(&users.User{}))
	database.DB = db
}

func guardedRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.Use(RequireActiveSubscription())
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func getStats(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	return w
}

func TestRequireActiveSubscriptionPasses(t *testing.T) {
	setupDB(t)

	expires := time.Now().AddDate(0, 1, 0)
	user := users.User{
		Name: "Ana", Email: "ana@example.com",
		Subscription: users.Subscription{
			PlanType:  "pro",
			Status:    users.SubscriptionActive,
			ExpiresAt: &expires,
		},
	}
	require.NoError(t, database.DB.Create(&user).Error)

	assert.Equal(t, http.StatusOK, getStats(guardedRouter(user.ID)).Code)
}

func TestRequireActiveSubscriptionNoSubscription(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	assert.Equal(t, http.StatusForbidden, getStats(guardedRouter(user.ID)).Code)
}

func TestRequireActiveSubscriptionExpired(t *testing.T) {
	setupDB(t)

	expired := time.Now().Add(-time.Hour)
	user := users.User{
		Name: "Ana", Email: "ana@example.com",
		Subscription: users.Subscription{
			PlanType:  "pro",
			Status:    users.SubscriptionActive,
			ExpiresAt: &expired,
		},
	}
	require.NoError(t, database.DB.Create(&user).Error)

	assert.Equal(t, http.StatusPaymentRequired, getStats(guardedRouter(user.ID)).Code)
}

func TestRequireCronSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	old := config.CRON_SECRET
	t.Cleanup(func() { config.CRON_SECRET = old })

	run := func(secret, header string) int {
		t.Helper()
		config.CRON_SECRET = secret

		r := gin.New()
		r.Use(RequireCronSecret())
		r.POST("/sweep", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

		req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
		if header != "" {
			req.Header.Set("X-Cron-Secret", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run("s3cret", "s3cret"))
	assert.Equal(t, http.StatusUnauthorized, run("s3cret", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, run("s3cret", ""))
	assert.Equal(t, http.StatusServiceUnavailable, run("", "anything"))
}
