package services

import (
	"testing"

	"github.com/FinDocs/FinDocs-Backend/src/models"
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

	// One connection keeps every query on the same in-memory database.
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

func createTestFolder(t *testing.T, db *gorm.DB, userId, name string) *models.FolderModel {
	t.Helper()

	folder := models.FolderModel{
		Name:   name,
		UserID: userId,
		Status: "pending",
	}
	require.NoError(t, db.Create(&folder).Error)
	return &folder
}
