package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"parts-portal-backend/internal/api/handlers"
	"parts-portal-backend/internal/api/middleware"
	"parts-portal-backend/internal/auth"
	"parts-portal-backend/internal/config"
	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/repository"
	"parts-portal-backend/internal/service"
	"parts-portal-backend/internal/storage"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, store storage.Client, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	partRepo := repository.NewPartRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Services
	auditRecorder := service.NewAuditRecorder(auditLogRepo, log)
	partService := service.NewPartService(partRepo, auditRecorder, validate)
	supplierService := service.NewSupplierService(userRepo, partRepo, auditRecorder, validate)
	documentService := service.NewDocumentService(documentRepo, partRepo, store, cfg.StorageBucket, auditRecorder)
	importService := service.NewImportService(partRepo, auditRecorder)
	auditLogService := service.NewAuditLogService(auditLogRepo)

	// Auth
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	partHandler := handlers.NewPartHandler(partService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	documentHandler := handlers.NewDocumentHandler(documentService, int64(cfg.MaxUploadSizeMB)*1024*1024)
	auditLogHandler := handlers.NewAuditLogHandler(auditLogService)
	importExportHandler := handlers.NewImportExportHandler(importService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.CreatePart)
			parts.GET("/stats", partHandler.GetStats)
			parts.GET("/search", partHandler.SearchParts)
			parts.GET("/:id", partHandler.GetPart)
			parts.PUT("/:id", partHandler.UpdatePart)
			parts.DELETE("/:id", partHandler.DeletePart)
			parts.POST("/:id/children", partHandler.AddChild)
			parts.PUT("/:id/children/:childId", partHandler.UpdateChild)
			parts.DELETE("/:id/children/:childId", partHandler.DeleteChild)
			parts.POST("/:id/children/:childId/duplicate", partHandler.DuplicateChild)
		}

		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("/upload", documentHandler.UploadDocument)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.GET("/:id/download", documentHandler.DownloadDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
		}

		v1.POST("/import/excel", importExportHandler.ImportExcel)
		v1.GET("/export/parts", importExportHandler.ExportParts)
		v1.GET("/export/template", importExportHandler.ExportTemplate)

		// Admin-only routes
		admin := v1.Group("")
		admin.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			suppliers := admin.Group("/suppliers")
			{
				suppliers.GET("", supplierHandler.ListSuppliers)
				suppliers.POST("", supplierHandler.CreateSupplier)
				suppliers.GET("/:id", supplierHandler.GetSupplier)
				suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
				suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
			}

			admin.GET("/audit-logs", auditLogHandler.ListAuditLogs)
			admin.GET("/audit-logs/export", auditLogHandler.ExportAuditLogs)
		}
	}

	return router
}
