package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/handlers"
	"github.com/itc-media/cms-backend/internal/middleware"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/rolepolicy"
	"github.com/itc-media/cms-backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	redisClient := models.InitRedis(cfg)
	defer redisClient.Close()

	// Initialize services
	s3Service, err := services.NewS3Service(cfg)
	if err != nil {
		log.Fatalf("Failed to init S3 mirror: %v", err)
	}
	storageService := services.NewStorageService(cfg, s3Service)
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	galleryService := services.NewGalleryService(db, storageService)
	videoService := services.NewVideoService(db)
	photoService := services.NewPhotoService(db, storageService)

	// Ensure the bootstrap SUPER_ADMIN account exists
	if err := authService.EnsureSuperAdmin(); err != nil {
		log.Fatalf("Failed to ensure super admin account: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	galleryHandler := handlers.NewGalleryHandler(galleryService, cfg)
	videoHandler := handlers.NewVideoHandler(videoService)
	photoHandler := handlers.NewPhotoHandler(photoService, cfg)

	// Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(redisClient, cfg))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	// Static file serving for uploaded images
	router.Static("/uploads", cfg.UploadsPath)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/country-codes", authHandler.CountryCodes)
			auth.GET("/me", middleware.Auth(cfg), authHandler.Me)
		}

		galleries := api.Group("/cms/galleries")
		{
			galleries.GET("", galleryHandler.GetAllGalleries)
			galleries.GET("/:id", galleryHandler.GetGalleryByID)

			protected := galleries.Group("", middleware.Auth(cfg),
				middleware.Authorize(rolepolicy.OpManageContent))
			protected.POST("", middleware.UploadRateLimit(redisClient, cfg), galleryHandler.CreateGallery)
			protected.PUT("/:id", middleware.UploadRateLimit(redisClient, cfg), galleryHandler.UpdateGallery)
			protected.DELETE("/:id", galleryHandler.DeleteGallery)
			protected.DELETE("/:id/images/:imageId", galleryHandler.DeleteImage)
		}

		videos := api.Group("/cms/videos")
		{
			videos.GET("", videoHandler.GetAllVideos)
			videos.GET("/:id", videoHandler.GetVideoByID)

			protected := videos.Group("", middleware.Auth(cfg),
				middleware.Authorize(rolepolicy.OpManageContent))
			protected.POST("", videoHandler.CreateVideo)
			protected.PUT("/:id", videoHandler.UpdateVideo)
			protected.DELETE("/:id", videoHandler.DeleteVideo)
		}

		photos := api.Group("/photos")
		{
			photos.GET("", photoHandler.GetAllPhotos)
			photos.GET("/:id", photoHandler.GetPhotoByID)

			protected := photos.Group("", middleware.Auth(cfg),
				middleware.Authorize(rolepolicy.OpManageContent))
			protected.POST("", middleware.UploadRateLimit(redisClient, cfg), photoHandler.UploadPhotos)
			protected.GET("/my-photos", photoHandler.GetMyPhotos)
			protected.PUT("/:id", photoHandler.UpdatePhoto)
			protected.DELETE("/:id", photoHandler.DeletePhoto)
			protected.POST("/delete-multiple", photoHandler.DeleteMultiplePhotos)
		}

		users := api.Group("/users", middleware.Auth(cfg))
		{
			users.GET("", middleware.Authorize(rolepolicy.OpListUsers), userHandler.GetAllUsers)
			users.GET("/stats", middleware.Authorize(rolepolicy.OpViewUserStats), userHandler.GetUserStats)
			users.GET("/:id", middleware.Authorize(rolepolicy.OpGetUser), userHandler.GetUserByID)
			users.PATCH("/:id/role", middleware.Authorize(rolepolicy.OpChangeUserRole), userHandler.UpdateUserRole)
			users.DELETE("/:id", middleware.Authorize(rolepolicy.OpDeleteUser), userHandler.DeleteUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"data":    nil,
			"error":   gin.H{"code": "NOT_FOUND", "message": "Route not found"},
		})
	})

	// Setup HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
