package main

import (
	"context"
	"net/http"
	"os"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/api"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/cache"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/config"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/handler"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/middleware"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connected to PostgreSQL")

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		logger.Error("Schema setup failed: %v", err)
		os.Exit(1)
	}
	if err := database.EnsureAdmin(ctx, cfg); err != nil {
		logger.Error("Admin seed failed: %v", err)
		os.Exit(1)
	}

	// Optional collaborators
	cache.Connect(cfg)
	if uploads, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warning("Cloudinary not configured, uploads disabled: %v", err)
	} else {
		handler.Uploads = uploads
	}

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
