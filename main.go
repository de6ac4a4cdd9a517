package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentacar/config"
	"rentacar/database"
	"rentacar/handlers"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Rent-a-Car platform")
	log.Printf("Environment: %s", cfg.AppEnv)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Ensure schema and admin seed
	if err := database.RunMigrations(database.GetDB(), cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Wire handler configuration
	handlers.SetJWTSecret(cfg.JWTSecret)
	if err := handlers.SetUploadDir(cfg.UploadDir); err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	// Setup Gin router
	router := setupRouter(cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter(cfg *config.Config) *gin.Engine {
	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Uploaded vehicle imagery
	router.Static("/uploads", cfg.UploadDir)

	// API routes
	api := router.Group("/api")
	{
		// Public catalog and booking routes
		api.GET("/vehicles", handlers.GetVehicles)
		api.GET("/vehicles/:id", handlers.GetVehicle)
		api.POST("/reservations", handlers.CreateReservation)
		api.POST("/auth/login", handlers.Login)

		// Admin routes
		admin := api.Group("", handlers.RequireAdmin())
		{
			admin.POST("/vehicles", handlers.CreateVehicle)
			admin.PUT("/vehicles/:id", handlers.UpdateVehicle)
			admin.DELETE("/vehicles/:id", handlers.DeleteVehicle)

			admin.GET("/reservations", handlers.GetReservations)
			admin.PUT("/reservations/:id", handlers.UpdateReservation)
			admin.DELETE("/reservations/:id", handlers.DeleteReservation)

			admin.POST("/upload", handlers.UploadImage)
			admin.POST("/upload-multiple", handlers.UploadImages)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
