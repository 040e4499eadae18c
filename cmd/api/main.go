package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"salonbook/internal/config"
	"salonbook/internal/database"
	"salonbook/internal/middleware"
	"salonbook/internal/modules/auth"
	"salonbook/internal/modules/booking"
	"salonbook/internal/modules/catalog"
	"salonbook/internal/modules/payment"
	"salonbook/internal/modules/review"
	"salonbook/internal/modules/subscription"
	jwtsvc "salonbook/internal/pkg/jwt"
	"salonbook/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	userRepo := repository.NewUserRepository(db)
	salonRepo := repository.NewSalonRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	stripeAccountRepo := repository.NewStripeAccountRepository(db)
	zoneRepo := repository.NewCoverageZoneRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	subscriptionService := subscription.NewService(subscriptionRepo, salonRepo, serviceRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	catalogService := catalog.NewService(salonRepo, serviceRepo, zoneRepo, subscriptionService)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, salonRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo, salonRepo)
	reviewHandler := review.NewHandler(reviewService)

	var processor payment.Processor
	if cfg.StripeSecretKey != "" {
		processor = payment.NewStripeClient(cfg.StripeSecretKey)
	}
	paymentService := payment.NewService(
		paymentRepo,
		bookingRepo,
		subscriptionService,
		stripeAccountRepo,
		salonRepo,
		processor,
		cfg.Currency,
		cfg.StripeWebhookSecret,
	)
	paymentService.SetLogger(log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.RateLimit(rdb, 300, time.Minute))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1, nil)
		catalogHandler.RegisterRoutes(v1, nil)
		reviewHandler.RegisterRoutes(v1, nil)
		subscriptionHandler.RegisterRoutes(v1, nil)
		paymentHandler.RegisterRoutes(v1, nil, nil)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterRoutes(nil, protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)
			paymentHandler.RegisterRoutes(nil, protected, nil)
		}

		owner := v1.Group("/")
		owner.Use(middleware.JWTAuth(j), middleware.OwnerOnly())
		{
			catalogHandler.RegisterRoutes(nil, owner)
			subscriptionHandler.RegisterRoutes(nil, owner)
			paymentHandler.RegisterRoutes(nil, nil, owner)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
