package dtos

import (
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/models"
)

// UploadedFileDTO is the metadata view of an uploaded file. Content is only
// ever served through an explicit download, never through list/get.
type UploadedFileDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	Status    string    `json:"status"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUploadedFileDTO(file *models.UploadedFileModel) UploadedFileDTO {
	return UploadedFileDTO{
		ID:        file.ID,
		Name:      file.Name,
		Type:      file.Type,
		Size:      file.Size,
		Status:    file.Status,
		UserID:    file.UserID,
		CreatedAt: file.CreatedAt,
	}
}

func NewUploadedFileDTOs(files []models.UploadedFileModel) []UploadedFileDTO {
	out := make([]UploadedFileDTO, 0, len(files))
	for i := range files {
		out = append(out, NewUploadedFileDTO(&files[i]))
	}
	return out
}

// ResultFileDTO is the metadata view of a result file embedded in a job.
type ResultFileDTO struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewResultFileDTO(result *models.ResultFileModel) ResultFileDTO {
	return ResultFileDTO{
		ID:        result.ID,
		JobID:     result.JobID,
		Name:      result.Name,
		Type:      result.Type,
		Size:      result.Size,
		CreatedAt: result.CreatedAt,
	}
}

func NewResultFileDTOs(results []models.ResultFileModel) []ResultFileDTO {
	out := make([]ResultFileDTO, 0, len(results))
	for i := range results {
		out = append(out, NewResultFileDTO(&results[i]))
	}
	return out
}
