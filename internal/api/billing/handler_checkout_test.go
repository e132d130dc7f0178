package billing

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homefinder-api/database"
	"homefinder-api/internal/domain/billing"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&users.User{}, &properties.Property{}, &billing.Payment{}))
	database.DB = db
}

func authedRouter(userID uint, method, path string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.Handle(method, path, handler)
	return r
}

func TestSubscriptionCheckoutParams(t *testing.T) {
	plan, ok := billing.LookupPlan("pro")
	require.True(t, ok)

	custID := "cus_123"
	user := users.User{ID: 7, Email: "ana@example.com", StripeCustomerID: &custID}

	params := subscriptionCheckoutParams(user, plan, "https://app.example.com", "usd")

	assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)
	assert.Equal(t, "cus_123", *params.Customer)
	assert.Equal(t, "7", *params.ClientReferenceID)

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, plan.AmountCents, *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, plan.Interval, *item.PriceData.Recurring.Interval)
	assert.Equal(t, plan.Name, *item.PriceData.ProductData.Name)

	assert.Equal(t, "7", params.Metadata["user_id"])
	assert.Equal(t, "pro", params.Metadata["plan_id"])
	require.NotNil(t, params.SubscriptionData)
	assert.Equal(t, "pro", params.SubscriptionData.Metadata["plan_id"])
}

func TestPromotionCheckoutParams(t *testing.T) {
	tier, ok := billing.LookupPromotionTier("two_weeks")
	require.True(t, ok)

	user := users.User{ID: 7, Email: "ana@example.com"}
	prop := properties.Property{ID: 42, OwnerID: 7, Title: "Loft"}

	params := promotionCheckoutParams(user, prop, tier, "https://app.example.com", "usd")

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	assert.Equal(t, "ana@example.com", *params.CustomerEmail)

	require.Len(t, params.LineItems, 1)
	assert.Equal(t, tier.AmountCents, *params.LineItems[0].PriceData.UnitAmount)
	assert.Nil(t, params.LineItems[0].PriceData.Recurring, "one-time payment must not recur")

	assert.Equal(t, "42", params.Metadata["property_id"])
	assert.Equal(t, "two_weeks", params.Metadata["duration"])
	assert.Equal(t, "14", params.Metadata["days"])
	assert.Equal(t, "7", params.Metadata["user_id"])
}

func TestCreatePromotionCheckoutRejectsNonOwner(t *testing.T) {
	setupDB(t)

	owner := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&owner).Error)
	intruder := users.User{Name: "Bo", Email: "bo@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&intruder).Error)

	prop := properties.Property{OwnerID: owner.ID, Title: "Loft", Status: properties.StatusApproved}
	require.NoError(t, database.DB.Create(&prop).Error)

	r := authedRouter(intruder.ID, http.MethodPost, "/billing/checkout/promotion", CreatePromotionCheckout)

	body := []byte(fmt.Sprintf(`{"property_id": %d, "duration": "week"}`, prop.ID))
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout/promotion", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Rejected before any Stripe call is attempted.
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}

func TestCreatePromotionCheckoutUnknownTier(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&user).Error)

	r := authedRouter(user.ID, http.MethodPost, "/billing/checkout/promotion", CreatePromotionCheckout)

	body := []byte(`{"property_id": 1, "duration": "decade"}`)
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout/promotion", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestCreateSubscriptionCheckoutUnknownPlan(t *testing.T) {
	setupDB(t)

	user := users.User{Name: "Ana", Email: "ana@example.com", IsVerified: true}
	require.NoError(t, database.DB.Create(&user).Error)

	r := authedRouter(user.ID, http.MethodPost, "/billing/checkout/subscription", CreateSubscriptionCheckout)

	body := []byte(`{"plan_id": "enterprise"}`)
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout/subscription", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}
