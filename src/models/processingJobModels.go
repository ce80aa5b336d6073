package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessingJobModel tracks one unit of work against one filename within a
// folder. Status is an open string ("queued", "processing", "completed",
// "failed" by convention); external callers drive transitions via PUT and no
// transition is guarded. A job has no owner column of its own: authorization
// always follows FolderID to the folder's user.
type ProcessingJobModel struct {
	ID          string            `json:"id" gorm:"type:uuid;primaryKey"`
	FolderID    string            `json:"folderId" gorm:"type:uuid;not null;index"`
	FileName    string            `json:"fileName" gorm:"type:varchar(255);not null"`
	Status      string            `json:"status" gorm:"type:varchar(50);not null;default:queued"`
	Progress    int               `json:"progress" gorm:"default:0"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt"`
	Results     []ResultFileModel `json:"results" gorm:"foreignKey:JobID"`
}

func (j *ProcessingJobModel) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// ResultFileModel is a generated artifact owned exclusively by its parent job.
// It is never addressed outside the job aggregate and has no routes or service
// of its own beyond job-scoped access.
type ResultFileModel struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	JobID     string    `json:"jobId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Type      string    `json:"type" gorm:"type:varchar(255);not null"`
	Size      int64     `json:"size" gorm:"not null"`
	Content   []byte    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *ResultFileModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type CreateJobRequest struct {
	UploadedFileID string `json:"uploadedFileId"`
	FileName       string `json:"fileName"`
}

type UpdateJobRequest struct {
	Status   string `json:"status"`
	Progress *int   `json:"progress"`
}
