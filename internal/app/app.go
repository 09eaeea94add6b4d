package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidHTTP "vidshare/internal/controller/http"
	"vidshare/internal/repo/persistent"
	"vidshare/internal/seed"
	"vidshare/internal/usecase"
	"vidshare/pkg/cache"
	"vidshare/pkg/config"
	"vidshare/pkg/database"
	"vidshare/pkg/jwt"
	"vidshare/pkg/logger"
	"vidshare/pkg/middleware"
	"vidshare/pkg/queue"
	"vidshare/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidshare/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	roleRepo := persistent.NewRoleRepository(a.db)
	userRepo := persistent.NewUserRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	ratingRepo := persistent.NewRatingRepository(a.db)

	// Reconcile the baseline data set before accepting traffic. A failure
	// here means the store is unusable, so it aborts startup.
	seeder := seed.NewSeeder(roleRepo, userRepo, categoryRepo, videoRepo, a.log)
	if err := seeder.Run(); err != nil {
		a.log.Error("Seeding failed: %v", err)
		return err
	}

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, roleRepo, a.s3Client, a.log)
	authUseCase := usecase.NewAuthUseCase(userUseCase, userRepo, a.jwtService, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, categoryRepo, a.s3Client, a.redisClient, a.queueClient, a.log)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, videoRepo)

	// Initialize HTTP handlers
	authHandler := vidHTTP.NewAuthHandler(authUseCase)
	userHandler := vidHTTP.NewUserHandler(userUseCase)
	videoHandler := vidHTTP.NewVideoHandler(videoUseCase, ratingUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Create)

		api.GET("/videos", videoHandler.List)
		api.GET("/videos/search", videoHandler.Search)
		api.GET("/videos/:id", videoHandler.GetByID)
		api.GET("/videos/:id/ratings", videoHandler.ListRatings)
		api.GET("/categories", videoHandler.ListCategories)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		if a.redisClient != nil {
			protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		}
		{
			protected.GET("/users", userHandler.FindAll)
			protected.GET("/users/:id", userHandler.FindByID)
			protected.GET("/users/email/:email", userHandler.FindByEmail)
			protected.PUT("/users/:id/role", userHandler.UpdateRole)
			protected.PUT("/users/:id/password", userHandler.ChangePassword)
			protected.POST("/users/:id/avatar", userHandler.UploadAvatar)
			protected.DELETE("/users/:id", userHandler.Delete)

			protected.POST("/videos", videoHandler.Upload)
			protected.POST("/videos/:id/ratings", videoHandler.Rate)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Vidshare service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down vidshare service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		a.queueClient.Close()
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Vidshare service exited")
	return nil
}
