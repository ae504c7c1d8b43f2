package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobportal/database"
	"jobportal/docs"
	"jobportal/internal/cache"
	"jobportal/internal/config"
	"jobportal/internal/controllers"
	"jobportal/internal/events"
	"jobportal/internal/middleware"
	"jobportal/internal/notify"
	"jobportal/internal/policy"
	"jobportal/internal/repository"
	"jobportal/internal/services"
	"jobportal/internal/storage"
	"jobportal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Job Portal API"
	docs.SwaggerInfo.Description = "REST API for job postings, applications and CV uploads."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		database.MonitorDBConnections(ctx, db)
	}

	userRepo := repository.NewUserRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	jobRepo := repository.NewJobRepository(db)

	var limiter middleware.Limiter = middleware.NewRateLimiter()
	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, continuing without cache: %v", err)
		} else {
			defer redisClient.Close()
			jobRepo = repository.NewCachedJobRepository(db, redisClient)
			limiter = middleware.NewRedisLimiter(redisClient.Client())
			log.Println("Redis cache and rate limiter enabled")
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQURL, events.DefaultExchange)
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, events will not be published: %v", err)
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()

	var mailer notify.Mailer
	mailConfig := notify.MailConfig{
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		Sender:   cfg.SMTPSender,
	}
	if mailConfig.Enabled() {
		mailer = notify.NewSMTPMailer(mailConfig)
		log.Printf("Interview e-mails enabled via %s", cfg.SMTPHost)
	}

	cvStore, err := storage.NewCVStore(cfg.UploadDir, cfg.MaxCVBytes)
	if err != nil {
		log.Fatalf("Failed to prepare CV storage: %v", err)
	}

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL(), cfg.AdminSecretCode)
	jobService := services.NewJobService(jobRepo, publisher)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, cvStore, publisher, mailer)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = 8 << 20

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Job Portal API is running")
	})

	routes.Register(router, routes.Dependencies{
		AuthController:        controllers.NewAuthController(authService),
		AdminController:       controllers.NewAdminController(authService),
		JobController:         controllers.NewJobController(jobService),
		ApplicationController: controllers.NewApplicationController(applicationService, cvStore.MaxBytes()),
		Auth:                  middleware.AuthMiddleware(userRepo, cfg.JWTSecret),
		Policy:                policy.Default(),
		RateLimit: routes.RateLimitConfig{
			Limiter: limiter,
			Limit:   cfg.LoginRateLimit,
			Window:  cfg.LoginRateWindow,
		},
	})

	routes.RegisterDebugRoutes(router, db, cfg.DBDriver, redisClient)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)
		log.Printf("Database Health: http://localhost:%s/debug/database", cfg.Port)
		log.Printf("Runtime Stats: http://localhost:%s/debug/stats", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
