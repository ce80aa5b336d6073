package services

import (
	"errors"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"gorm.io/gorm"
)

// ResultService reads result files through their parent job. Result files
// have no lifecycle of their own; every access resolves the job, follows its
// folder to the owner and only then touches the embedded rows.
type ResultService struct {
	db *gorm.DB
}

// NewResultService creates a new instance of ResultService
func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

func (s *ResultService) getOwnedJob(userId, jobId string) (*models.ProcessingJobModel, error) {
	var job models.ProcessingJobModel
	result := s.db.First(&job, "id = ?", jobId)
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

// GetResultsForJob lists a job's result files, content projected away.
func (s *ResultService) GetResultsForJob(userId, jobId string) ([]models.ResultFileModel, error) {
	if _, err := s.getOwnedJob(userId, jobId); err != nil {
		return nil, err
	}

	var results []models.ResultFileModel
	if err := s.db.Omit("content").Where("job_id = ?", jobId).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetResultByID retrieves one result file's metadata from within a job.
func (s *ResultService) GetResultByID(userId, jobId, resultId string) (*models.ResultFileModel, error) {
	if _, err := s.getOwnedJob(userId, jobId); err != nil {
		return nil, err
	}

	var result models.ResultFileModel
	err := s.db.Omit("content").Where("id = ? AND job_id = ?", resultId, jobId).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// DownloadResult retrieves one result file including its bytes.
func (s *ResultService) DownloadResult(userId, jobId, resultId string) (*models.ResultFileModel, error) {
	if _, err := s.getOwnedJob(userId, jobId); err != nil {
		return nil, err
	}

	var result models.ResultFileModel
	err := s.db.Where("id = ? AND job_id = ?", resultId, jobId).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(result.Content) == 0 {
		return nil, ErrNotFound
	}
	return &result, nil
}
