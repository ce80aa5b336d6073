package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobService struct {
	db *gorm.DB
}

// NewJobService creates a new instance of JobService
func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// sortableJobColumns maps the public sort field names of the listing endpoint
// to their columns. Anything else is ignored rather than interpolated.
var sortableJobColumns = map[string]string{
	"createdAt":   "created_at",
	"completedAt": "completed_at",
	"fileName":    "file_name",
	"status":      "status",
	"progress":    "progress",
}

// CreateJob creates a job inside a folder the caller owns. The job's file
// name comes from the referenced uploaded file when one is given, otherwise
// from the explicit fileName; at least one must be supplied.
func (s *JobService) CreateJob(userId, folderId string, req *models.CreateJobRequest) (*models.ProcessingJobModel, error) {
	var folder models.FolderModel
	result := s.db.Where("id = ? AND user_id = ?", folderId, userId).First(&folder)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	fileName := req.FileName
	if req.UploadedFileID != "" {
		var file models.UploadedFileModel
		result := s.db.Omit("content").Where("id = ? AND user_id = ?", req.UploadedFileID, userId).First(&file)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, ErrFileNotFound
			}
			return nil, result.Error
		}
		fileName = file.Name
	} else if fileName == "" {
		return nil, ErrMissingFileName
	}

	job := models.ProcessingJobModel{
		FolderID: folderId,
		FileName: fileName,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJobsByFolder lists all jobs of a folder the caller owns.
func (s *JobService) GetJobsByFolder(userId, folderId string) ([]models.ProcessingJobModel, error) {
	var folder models.FolderModel
	result := s.db.Where("id = ? AND user_id = ?", folderId, userId).First(&folder)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	var jobs []models.ProcessingJobModel
	if err := s.db.Preload("Results").Where("folder_id = ?", folderId).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobByID resolves a job and authorizes the caller by following the job's
// folder to its owner.
func (s *JobService) GetJobByID(userId, jobId string) (*models.ProcessingJobModel, error) {
	var job models.ProcessingJobModel
	result := s.db.Preload("Results").First(&job, "id = ?", jobId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, result.Error
	}

	var folder models.FolderModel
	result = s.db.First(&folder, "id = ?", job.FolderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, result.Error
	}
	if folder.UserID != userId {
		return nil, ErrNotAuthorized
	}

	return &job, nil
}

// UpdateJob sets status and/or progress. Status is an open string and any
// transition is allowed. CompletedAt is stamped exactly once, the first time
// status becomes "completed"; later updates never touch it.
func (s *JobService) UpdateJob(userId, jobId string, req *models.UpdateJobRequest) (*models.ProcessingJobModel, error) {
	job, err := s.GetJobByID(userId, jobId)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		job.Status = req.Status
	}
	if req.Progress != nil {
		job.Progress = *req.Progress
	}
	if req.Status == "completed" && job.CompletedAt == nil {
		now := time.Now()
		job.CompletedAt = &now
	}

	// Result rows belong to the analyzer; only the job row is written here.
	if err := s.db.Omit(clause.Associations).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// GetAllJobs lists every job the caller can reach through folder ownership,
// with optional "field:direction" sorting and a result limit.
func (s *JobService) GetAllJobs(userId, sort string, limit int) ([]models.ProcessingJobModel, error) {
	query := s.db.Preload("Results").
		Joins("JOIN folder_models ON folder_models.id = processing_job_models.folder_id").
		Where("folder_models.user_id = ?", userId)

	if sort != "" {
		parts := strings.SplitN(sort, ":", 2)
		if column, ok := sortableJobColumns[parts[0]]; ok {
			direction := "ASC"
			if len(parts) == 2 && parts[1] == "desc" {
				direction = "DESC"
			}
			query = query.Order(fmt.Sprintf("processing_job_models.%s %s", column, direction))
		}
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var jobs []models.ProcessingJobModel
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
