package services

import (
	"math"
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats are the rollups the dashboard landing page renders.
type DashboardStats struct {
	TotalDocuments     int64 `json:"totalDocuments"`
	DocumentsThisMonth int64 `json:"documentsThisMonth"`
	CompletedJobs      int64 `json:"completedJobs"`
	PendingJobs        int64 `json:"pendingJobs"`
	SuccessRate        int   `json:"successRate"`
	ActiveFolders      int64 `json:"activeFolders"`
}

// GetDashboardStats computes per-user counts over uploads, analysis results
// and folders. Job states come from the analysis document's
// metadata.processing_status field.
func (s *StatsService) GetDashboardStats(userId string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := s.db.Model(&models.UploadedFileModel{}).
		Where("user_id = ?", userId).
		Count(&stats.TotalDocuments).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	err = s.db.Model(&models.UploadedFileModel{}).
		Where("user_id = ? AND created_at >= ?", userId, startOfMonth).
		Count(&stats.DocumentsThisMonth).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.AnalysisResultModel{}).
		Where("user_id = ?", userId).
		Where(datatypes.JSONQuery("document").Equals("completed", "metadata", "processing_status")).
		Count(&stats.CompletedJobs).Error
	if err != nil {
		return nil, err
	}

	pendingStatuses := s.db.
		Where(datatypes.JSONQuery("document").Equals("processing", "metadata", "processing_status")).
		Or(datatypes.JSONQuery("document").Equals("pending", "metadata", "processing_status"))
	err = s.db.Model(&models.AnalysisResultModel{}).
		Where("user_id = ?", userId).
		Where(pendingStatuses).
		Count(&stats.PendingJobs).Error
	if err != nil {
		return nil, err
	}

	var totalJobs int64
	err = s.db.Model(&models.AnalysisResultModel{}).
		Where("user_id = ?", userId).
		Count(&totalJobs).Error
	if err != nil {
		return nil, err
	}
	if totalJobs > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.CompletedJobs) / float64(totalJobs) * 100))
	}

	err = s.db.Model(&models.FolderModel{}).
		Where("user_id = ? AND status = ?", userId, "active").
		Count(&stats.ActiveFolders).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
