package controllers_test

import (
	"testing"

	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/routes"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.FolderModel{},
		&models.UploadedFileModel{},
		&models.ProcessingJobModel{},
		&models.ResultFileModel{},
		&models.AnalysisResultModel{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.UserModel {
	t.Helper()

	user := models.UserModel{
		Email:        email,
		Name:         "Test User",
		Subscription: "basic",
		Password:     "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// newTestRouter wires every route group against an in-memory database and
// points the identity middleware at a fresh user, mirroring the deployed
// mock-identity setup.
func newTestRouter(t *testing.T, analysisEndpoint string) (*gin.Engine, *gorm.DB, *models.UserModel) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	user := createTestUser(t, db, "caller@example.com")
	middleware.SetIdentityResolver(middleware.MockIdentity(user.ID))
	middleware.SetSecretKey("test-secret")

	router := gin.New()
	router.Use(middleware.ErrorHandler())

	routes.SetupAuthRoutes(router, services.NewUserService(db))
	routes.SetupUserRoutes(router, services.NewUserService(db))
	routes.SetupFolderRoutes(router, services.NewFolderService(db))
	routes.SetupUploadRoutes(router, services.NewUploadService(db))
	routes.SetupJobRoutes(router, services.NewJobService(db))
	routes.SetupResultRoutes(router, services.NewResultService(db))
	routes.SetupAnalysisRoutes(router, services.NewAnalysisService(db))
	routes.SetupWebhookRoutes(router, services.NewWebhookService(db, analysisEndpoint))
	routes.SetupStatsRoutes(router, services.NewStatsService(db))

	return router, db, user
}
