// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"programlaz-api/config"
	"programlaz-api/database"
	"programlaz-api/jobs"
	"programlaz-api/middleware"
	"programlaz-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with sample data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Middleware
	router.Use(routes.SetupCORS())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Background statistics cleanup: daily run, keep 400 days of counters
	statsJob := jobs.NewStatisticsRollupJob(db, 24*time.Hour, 400*24*time.Hour)
	statsJob.Start()
	defer statsJob.Stop()

	// Start server
	log.Printf("Starting Programláz API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
