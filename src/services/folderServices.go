package services

import (
	"errors"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderService struct {
	db *gorm.DB
}

// NewFolderService creates a new instance of FolderService
func NewFolderService(db *gorm.DB) *FolderService {
	return &FolderService{db: db}
}

// CreateFolder creates a new Folder owned by the given user. Status starts as
// "pending" via the column default.
func (s *FolderService) CreateFolder(userId string, req *models.CreateFolderRequest) (*models.FolderModel, error) {
	folder := models.FolderModel{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userId,
	}
	if err := s.db.Create(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetAllFolders retrieves all folders owned by the given user
func (s *FolderService) GetAllFolders(userId string) ([]models.FolderModel, error) {
	var folders []models.FolderModel
	result := s.db.Where("user_id = ?", userId).Find(&folders)
	if result.Error != nil {
		return nil, result.Error
	}
	return folders, nil
}

// GetFolderByID retrieves a folder scoped to its owner. A malformed id folds
// into the same not-found result so id format details never leak.
func (s *FolderService) GetFolderByID(userId, id string) (*models.FolderModel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var folder models.FolderModel
	result := s.db.Where("id = ? AND user_id = ?", id, userId).First(&folder)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &folder, nil
}

// UpdateFolder applies a partial update of name and description.
func (s *FolderService) UpdateFolder(userId, id string, req *models.UpdateFolderRequest) (*models.FolderModel, error) {
	folder, err := s.GetFolderByID(userId, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		folder.Name = req.Name
	}
	if req.Description != nil {
		folder.Description = req.Description
	}

	if err := s.db.Save(folder).Error; err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder hard-deletes a folder. Jobs and files referencing it are left
// in place; there is no cascade.
func (s *FolderService) DeleteFolder(userId, id string) error {
	folder, err := s.GetFolderByID(userId, id)
	if err != nil {
		return err
	}
	return s.db.Delete(folder).Error
}
