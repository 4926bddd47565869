package routes

import (
	"net/http"
	"time"

	"weddinghub/config"
	"weddinghub/handlers"
	"weddinghub/middleware"
	"weddinghub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account, vendor catalog, and planning-task
// endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/signup", hb.User.Signup)
		api.POST("/signin", hb.User.Signin)

		// Public vendor directory.
		api.GET("/vendors", hb.User.ListVendors)
		api.GET("/vendors/:id", hb.User.GetVendor)

		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		auth.POST("/signout", hb.User.Signout)
		auth.GET("/profile", hb.User.Profile)
		auth.PUT("/profile", hb.User.UpdateProfile)
		auth.DELETE("", hb.User.DeleteAccount)

		vendor := auth.Group("/vendor")
		vendor.Use(middleware.RequireRole(models.RoleVendor))
		vendor.PUT("/setup", hb.User.SetupVendor)
		vendor.PUT("/unavailable-dates", hb.User.SetUnavailableDates)
		vendor.GET("/features", hb.User.Features)
		vendor.POST("/services", hb.User.AddService)
		vendor.PUT("/services/:serviceId", hb.User.UpdateService)
		vendor.DELETE("/services/:serviceId", hb.User.RemoveService)
		vendor.POST("/packages", hb.User.AddPackage)
		vendor.PUT("/packages/:packageId", hb.User.UpdatePackage)
		vendor.DELETE("/packages/:packageId", hb.User.RemovePackage)

		tasks := auth.Group("/tasks")
		tasks.Use(middleware.RequireRole(models.RoleCustomer))
		tasks.POST("", hb.Planning.AddTask)
		tasks.PUT("/:index", hb.Planning.UpdateTask)
		tasks.DELETE("/:index", hb.Planning.RemoveTask)
		tasks.POST("/:index/subtasks", hb.Planning.AddSubtask)
		tasks.PATCH("/:index/subtasks/:subIndex", hb.Planning.ToggleSubtask)
		tasks.DELETE("/:index/subtasks/:subIndex", hb.Planning.RemoveSubtask)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.Create)
		api.GET("", hb.Booking.ListMine)
		api.GET("/user/:userId", hb.Booking.ListForUser)
		api.GET("/:id", hb.Booking.Get)
		api.PUT("/:id", hb.Booking.Update)
		api.PATCH("/:id/confirm", hb.Booking.Confirm)
		api.PATCH("/:id/reject", hb.Booking.Reject)
		api.PATCH("/:id/payment-status", hb.Booking.UpdatePaymentStatus)
		api.DELETE("/:id", hb.Booking.Delete)
	}
}

// RegisterChatRoutes registers the messaging endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Chat.Send)
		api.GET("", hb.Chat.Partners)
		api.GET("/:userId", hb.Chat.Conversation)
	}
}

// RegisterReviewRoutes registers the review endpoints. Listing is public.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/:targetId", hb.Review.List)

		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		auth.POST("", hb.Review.Create)
		auth.PUT("/:id", hb.Review.Update)
		auth.DELETE("/:id", hb.Review.Delete)
	}
}

// RegisterNotificationRoutes registers the notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Notification.List)
	}
}

// RegisterGuestRoutes registers the guest list and invitation endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	guests := r.Group("/api/guests")
	{
		guests.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		guests.Use(middleware.RequireRole(models.RoleCustomer))
		guests.POST("", hb.Guest.Add)
		guests.GET("", hb.Guest.List)
		guests.PUT("/:id", hb.Guest.Update)
		guests.DELETE("/:id", hb.Guest.Delete)
	}

	invitations := r.Group("/api/invitations")
	{
		invitations.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		invitations.Use(middleware.RequireRole(models.RoleCustomer))
		invitations.GET("/settings", hb.Planning.GetInvitationSetting)
		invitations.PUT("/settings", hb.Planning.SetInvitationSetting)
		invitations.POST("/send", hb.Guest.SendInvitations)
	}
}

// RegisterEventRoutes registers the wedding timeline endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.POST("", hb.Event.Add)
		api.GET("", hb.Event.List)
		api.PUT("/:id", hb.Event.Update)
		api.DELETE("/:id", hb.Event.Delete)
	}
}

// RegisterPaymentRoutes registers the card payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.POST("/intent", hb.Payment.CreateIntent)
		api.POST("/complete", hb.Payment.Complete)
	}
}

// RegisterStorageRoutes registers gallery uploads, gated on the vendor's
// plan.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireVendorFeature(func(fs models.FeatureSet) bool { return fs.GalleryUpload }))
		api.POST("/:bucket", hb.Storage.Upload)
		api.DELETE("/:publicId", hb.Storage.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm WeddingHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	allowOrigins := []string{"*"}
	if config.AppConfig.ClientURL != "" {
		allowOrigins = []string{config.AppConfig.ClientURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
