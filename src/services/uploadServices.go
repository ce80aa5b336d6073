package services

import (
	"errors"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadService struct {
	db *gorm.DB
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(db *gorm.DB) *UploadService {
	return &UploadService{db: db}
}

// SaveUploadedFile persists the file bytes and metadata in one record.
func (s *UploadService) SaveUploadedFile(file *models.UploadedFileModel) (*models.UploadedFileModel, error) {
	if err := s.db.Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

// GetAllUploadedFiles lists the caller's files, content projected away.
func (s *UploadService) GetAllUploadedFiles(userId string) ([]models.UploadedFileModel, error) {
	var files []models.UploadedFileModel
	result := s.db.Omit("content").Where("user_id = ?", userId).Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

// GetUploadedFileByID retrieves one file's metadata, owner-scoped. Malformed
// ids fold into not-found.
func (s *UploadService) GetUploadedFileByID(userId, id string) (*models.UploadedFileModel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var file models.UploadedFileModel
	result := s.db.Omit("content").Where("id = ? AND user_id = ?", id, userId).First(&file)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &file, nil
}

// DeleteUploadedFile hard-deletes a file record.
func (s *UploadService) DeleteUploadedFile(userId, id string) error {
	file, err := s.GetUploadedFileByID(userId, id)
	if err != nil {
		return err
	}
	return s.db.Delete(file).Error
}
