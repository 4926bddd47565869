package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddinghub/config"
	"weddinghub/cron"
	"weddinghub/database"
	bookingRepoPkg "weddinghub/database/repository/booking"
	chatRepoPkg "weddinghub/database/repository/chat"
	eventRepoPkg "weddinghub/database/repository/event"
	guestRepoPkg "weddinghub/database/repository/guest"
	notificationRepoPkg "weddinghub/database/repository/notification"
	reviewRepoPkg "weddinghub/database/repository/review"
	userRepoPkg "weddinghub/database/repository/user"
	"weddinghub/handlers"
	"weddinghub/middleware"
	"weddinghub/routes"
	"weddinghub/services/booking"
	"weddinghub/services/chat"
	"weddinghub/services/event"
	"weddinghub/services/guest"
	"weddinghub/services/notification"
	"weddinghub/services/payment"
	"weddinghub/services/review"
	"weddinghub/services/storage"
	"weddinghub/services/user"
	"weddinghub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitLockClient()
	utils.FirebaseInit()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()

	// services.
	notificationService := notification.NewNotificationService(notificationRepo, userRepo)
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Users:    userRepo,
		Notifier: notificationService,
		Locks:    booking.NewRedisDayLocker(utils.GetLockClient()),
	}
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Scheduler: cron.NewScheduler(),
	}
	chatService := chat.NewChatService(chatRepo, userRepo)
	reviewService := review.NewReviewService(reviewRepo, userRepo)
	guestService := guest.NewGuestService(guestRepo, userRepo, utils.NewSMTPMailer())
	eventService := event.NewEventService(eventRepo)
	paymentService := payment.NewPaymentService(bookingRepo, bookingService)
	storageService := storage.NewCloudinaryStorage(cld)

	// Background queue worker for scheduled invitation dispatch.
	cron.InitInvitationWorker(guestService)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Booking:      handlers.NewBookingHandler(bookingService),
		User:         handlers.NewUserHandler(userService),
		Planning:     handlers.NewPlanningHandler(userService),
		Chat:         handlers.NewChatHandler(chatService),
		Review:       handlers.NewReviewHandler(reviewService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Guest:        handlers.NewGuestHandler(guestService),
		Event:        handlers.NewEventHandler(eventService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Storage:      handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
