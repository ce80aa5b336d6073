package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadedFileModel stores the raw document bytes alongside the metadata. The
// folder a file was uploaded into is client-side bookkeeping only; there is
// deliberately no folder column here.
type UploadedFileModel struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Type      string    `json:"type" gorm:"type:varchar(255);not null"`
	Size      int64     `json:"size" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null;default:uploaded"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Content   []byte    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *UploadedFileModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
