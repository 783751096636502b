package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"resort-backend/internal/database"
	"resort-backend/internal/middleware"
	"resort-backend/internal/modules/auth"
	"resort-backend/internal/modules/booking"
	"resort-backend/internal/modules/catalog"
	"resort-backend/internal/modules/contact"
	"resort-backend/internal/modules/discount"
	"resort-backend/internal/modules/notification"
	"resort-backend/internal/modules/payment"
	"resort-backend/internal/modules/review"
	"resort-backend/internal/modules/stats"
	jwtsvc "resort-backend/internal/pkg/jwt"
	"resort-backend/internal/pkg/logger"
	"resort-backend/internal/pkg/mailer"
	"resort-backend/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := logger.Init()
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "resort.db"
		log.Warn("DATABASE_URL is empty, falling back to local SQLite", zap.String("dsn", dsn))
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" && os.Getenv("AUTH_TEST_MODE") != "1" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(repository.NewUserRepository(db), j)
	authHandler := auth.NewHandler(authService)

	catalogHandler := catalog.NewHandler(catalog.NewService(db))
	bookingHandler := booking.NewHandler(booking.NewService(db))
	paymentHandler := payment.NewHandler(payment.NewService(db))
	discountHandler := discount.NewHandler(discount.NewService(repository.NewDiscountRepository(db)))
	reviewHandler := review.NewHandler(review.NewService(db))
	notificationHandler := notification.NewHandler(notification.NewService(repository.NewNotificationRepository(db)))
	contactHandler := contact.NewHandler(contact.NewService(repository.NewContactRepository(db), mailer.New(log), log))
	statsHandler := stats.NewHandler(stats.NewService(repository.NewStatsRepository(db), repository.NewBookingRepository(db)))

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.JWTAuth(j)
	if os.Getenv("AUTH_TEST_MODE") == "1" {
		log.Warn("AUTH_TEST_MODE enabled, all requests run as admin")
		authMW = middleware.TestModeAuth()
	}

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(authMW)
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			discountHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterProtectedRoutes(protected)
		}

		staff := v1.Group("/staff")
		staff.Use(authMW, middleware.StaffOrAdmin())
		{
			bookingHandler.RegisterStaffRoutes(staff)
			paymentHandler.RegisterStaffRoutes(staff)
			reviewHandler.RegisterStaffRoutes(staff)
			notificationHandler.RegisterStaffRoutes(staff)
			contactHandler.RegisterStaffRoutes(staff)
		}

		admin := v1.Group("/admin")
		admin.Use(authMW, middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			discountHandler.RegisterAdminRoutes(admin)
			statsHandler.RegisterAdminRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
