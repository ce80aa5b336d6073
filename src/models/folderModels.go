package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderModel struct {
	ID          string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Description *string `json:"description" gorm:"type:text"`
	// FileCount is a display value carried for the dashboard; writes never
	// maintain it.
	FileCount int       `json:"fileCount" gorm:"default:0"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null;default:pending"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *FolderModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type CreateFolderRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type UpdateFolderRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
