package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"parts-portal-backend/internal/api/routes"
	"parts-portal-backend/internal/config"
	"parts-portal-backend/internal/database"
	"parts-portal-backend/internal/storage"

	_ "parts-portal-backend/docs" // This is needed for swag
)

//	@title			Supplier Parts Portal API
//	@version		1.0
//	@description	Backend API for the supplier parts compliance portal: suppliers maintain parent parts and their components with customs attributes, admins manage supplier accounts and the audit trail, and bulk data moves through Excel import/export.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	store, err := storage.NewClient(storage.Config{
		Endpoint:       cfg.StorageEndpoint,
		AccessKey:      cfg.StorageAccessKey,
		SecretKey:      cfg.StorageSecretKey,
		Bucket:         cfg.StorageBucket,
		UseSSL:         cfg.StorageUseSSL,
		Region:         cfg.StorageRegion,
		TimeoutSeconds: cfg.StorageTimeoutSec,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize object storage:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.EnsureBucket(ctx, cfg.StorageBucket); err != nil {
		logrus.Fatal("Failed to ensure storage bucket:", err)
	}
	cancel()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, store, cfg, logrus.StandardLogger())

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
