package dtos

import (
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/models"
)

type ProcessingJobDTO struct {
	ID          string          `json:"id"`
	FolderID    string          `json:"folderId"`
	FileName    string          `json:"fileName"`
	Status      string          `json:"status"`
	Progress    int             `json:"progress"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt"`
	Results     []ResultFileDTO `json:"results"`
}

func NewProcessingJobDTO(job *models.ProcessingJobModel) ProcessingJobDTO {
	return ProcessingJobDTO{
		ID:          job.ID,
		FolderID:    job.FolderID,
		FileName:    job.FileName,
		Status:      job.Status,
		Progress:    job.Progress,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
		Results:     NewResultFileDTOs(job.Results),
	}
}

func NewProcessingJobDTOs(jobs []models.ProcessingJobModel) []ProcessingJobDTO {
	out := make([]ProcessingJobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewProcessingJobDTO(&jobs[i]))
	}
	return out
}
