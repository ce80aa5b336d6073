package main

import (
	"log"
	"os"

	"github.com/FinDocs/FinDocs-Backend/src/db"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/routes"
	"github.com/FinDocs/FinDocs-Backend/src/seed"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.FolderModel{},
		&models.UploadedFileModel{},
		&models.ProcessingJobModel{},
		&models.ResultFileModel{},
		&models.AnalysisResultModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Token secret for login-issued tokens
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// The deployed identity is the fixed mock user; seed it so routes that
	// read the user record resolve.
	mockUserId := os.Getenv("MOCK_USER_ID")
	if mockUserId == "" {
		mockUserId = middleware.DefaultMockUserID
	}
	middleware.SetIdentityResolver(middleware.MockIdentity(mockUserId))
	seed.Seed(db, mockUserId)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.Use(middleware.ErrorHandler())

	// Services setup
	userService := services.NewUserService(db)
	folderService := services.NewFolderService(db)
	uploadService := services.NewUploadService(db)
	jobService := services.NewJobService(db)
	resultService := services.NewResultService(db)
	analysisService := services.NewAnalysisService(db)
	webhookService := services.NewWebhookService(db, os.Getenv("ANALYSIS_WEBHOOK_URL"))
	statsService := services.NewStatsService(db)

	// Routes setup
	routes.SetupAuthRoutes(router, userService)
	routes.SetupUserRoutes(router, userService)
	routes.SetupFolderRoutes(router, folderService)
	routes.SetupUploadRoutes(router, uploadService)
	routes.SetupJobRoutes(router, jobService)
	routes.SetupResultRoutes(router, resultService)
	routes.SetupAnalysisRoutes(router, analysisService)
	routes.SetupWebhookRoutes(router, webhookService)
	routes.SetupStatsRoutes(router, statsService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "API Running!")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
