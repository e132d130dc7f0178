package routes

import (
	adminapi "homefinder-api/internal/api/admin"
	authapi "homefinder-api/internal/api/auth"
	"homefinder-api/internal/api/billing"
	blogapi "homefinder-api/internal/api/blog"
	"homefinder-api/internal/api/maintenance"
	notificationsapi "homefinder-api/internal/api/notifications"
	propertiesapi "homefinder-api/internal/api/properties"
	reviewsapi "homefinder-api/internal/api/reviews"
	stripewebhooks "homefinder-api/internal/api/stripewebhook"
	usersapi "homefinder-api/internal/api/users"
	visitsapi "homefinder-api/internal/api/visits"
	"homefinder-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Signature-authenticated; must see the raw body, so no sanitizing here.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Scheduler endpoints, shared-secret auth.
	internal := r.Group("/internal")
	internal.Use(middleware.RequireCronSecret())
	internal.POST("/expire-featured", maintenance.ExpireFeaturedListings)

	// Public
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/plans", billing.ListPlans)
	public.GET("/promotion-tiers", billing.ListPromotionTiers)

	public.GET("/properties", propertiesapi.ListProperties)
	public.GET("/properties/:id", propertiesapi.GetPropertyByID)
	public.GET("/properties/:id/reviews", reviewsapi.ListReviews)

	public.GET("/blog", blogapi.ListPosts)
	public.GET("/blog/:slug", blogapi.GetPostBySlug)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/properties", propertiesapi.CreateProperty)
	auth.PUT("/properties/:id", propertiesapi.UpdateProperty)
	auth.DELETE("/properties/:id", propertiesapi.DeleteProperty)
	auth.POST("/properties/:id/photos", propertiesapi.UploadPhoto)
	auth.GET("/my/properties", propertiesapi.ListOwnProperties)

	auth.POST("/properties/:id/favorite", usersapi.AddFavorite)
	auth.DELETE("/properties/:id/favorite", usersapi.RemoveFavorite)
	auth.GET("/favorites", usersapi.ListFavorites)

	auth.POST("/properties/:id/reviews", reviewsapi.CreateReview)
	auth.DELETE("/reviews/:id", reviewsapi.DeleteReview)

	auth.POST("/properties/:id/visits", visitsapi.CreateVisitRequest)
	auth.GET("/my/visits", visitsapi.ListVisitsForOwner)
	auth.POST("/visits/:id/respond", visitsapi.RespondToVisit)

	auth.GET("/notifications", notificationsapi.ListNotifications)
	auth.POST("/notifications/:id/read", notificationsapi.MarkNotificationRead)

	auth.POST("/billing/checkout/subscription", billing.CreateSubscriptionCheckout)
	auth.POST("/billing/checkout/promotion", billing.CreatePromotionCheckout)
	auth.GET("/billing/checkout/status", billing.CheckoutStatus)
	auth.GET("/billing/payments", billing.GetPaymentHistory)
	auth.POST("/billing/cancel", billing.CancelSubscription)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/properties/:id/stats", propertiesapi.GetPropertyStats)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/favorites/summary", adminapi.FavoritesSummary)
	admin.GET("/properties/pending", adminapi.ListPendingProperties)
	admin.POST("/properties/:id/approve", adminapi.ApproveProperty)
	admin.POST("/properties/:id/reject", adminapi.RejectProperty)
	admin.POST("/broadcast", adminapi.BroadcastEmail)

	admin.POST("/blog", blogapi.CreatePost)
	admin.PUT("/blog/:slug", blogapi.UpdatePost)
	admin.DELETE("/blog/:slug", blogapi.DeletePost)
}
