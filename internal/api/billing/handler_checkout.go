package billing

import (
	"fmt"
	"net/http"
	"os"

	"homefinder-api/config"
	"homefinder-api/database"
	"homefinder-api/internal/domain/billing"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
)

// POST /billing/checkout/subscription
func CreateSubscriptionCheckout(c *gin.Context) {
	var body struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan_id"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	plan, ok := billing.LookupPlan(body.PlanID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown plan"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	// ensure stripe customer
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Metadata: map[string]string{
				"user_id": fmt.Sprint(user.ID),
				"app_env": os.Getenv("APP_ENV"),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		user.StripeCustomerID = stripe.String(cus.ID)
	}

	params := subscriptionCheckoutParams(user, plan, config.APP_URL, config.CURRENCY)

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// POST /billing/checkout/promotion
func CreatePromotionCheckout(c *gin.Context) {
	var body struct {
		PropertyID uint   `json:"property_id"`
		Duration   string `json:"duration"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PropertyID == 0 || body.Duration == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing property_id or duration"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	tier, ok := billing.LookupPromotionTier(body.Duration)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown promotion duration"})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ?", body.PropertyID).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	if prop.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the listing owner can feature a property"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	params := promotionCheckoutParams(user, prop, tier, config.APP_URL, config.CURRENCY)

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// subscriptionCheckoutParams builds the session request for a plan purchase.
// The plan is priced inline from the catalog; metadata carries what the
// webhook needs to apply the entitlement.
func subscriptionCheckoutParams(user users.User, plan billing.Plan, appURL, currency string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/account?checkout=success"),
		CancelURL:  stripe.String(appURL + "/account?checkout=canceled"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(plan.AmountCents),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(plan.Interval),
					},
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id": fmt.Sprint(user.ID),
				"plan_id": plan.ID,
			},
		},
	}

	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		params.Customer = stripe.String(*user.StripeCustomerID)
	}

	params.AddMetadata("user_id", fmt.Sprint(user.ID))
	params.AddMetadata("plan_id", plan.ID)

	return params
}

// promotionCheckoutParams builds the one-time payment session for featuring
// a listing.
func promotionCheckoutParams(user users.User, prop properties.Property, tier billing.PromotionTier, appURL, currency string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(fmt.Sprintf("%s/properties/%d?promotion=success", appURL, prop.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/properties/%d?promotion=canceled", appURL, prop.ID)),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		CustomerEmail: stripe.String(user.Email),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(tier.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(tier.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),
	}

	params.AddMetadata("user_id", fmt.Sprint(user.ID))
	params.AddMetadata("property_id", fmt.Sprint(prop.ID))
	params.AddMetadata("duration", tier.ID)
	params.AddMetadata("days", fmt.Sprint(tier.Days))

	return params
}
