package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/google/uuid"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnalysisService struct {
	db *gorm.DB
}

// NewAnalysisService creates a new instance of AnalysisService
func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// GetAllResults lists the caller's analysis results, newest first.
func (s *AnalysisService) GetAllResults(userId string) ([]models.AnalysisResultModel, error) {
	var results []models.AnalysisResultModel
	err := s.db.Where("user_id = ?", userId).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetResultByID retrieves one analysis result, owner-scoped. Malformed ids
// fold into not-found.
func (s *AnalysisService) GetResultByID(userId, id string) (*models.AnalysisResultModel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var result models.AnalysisResultModel
	err := s.db.Where("id = ? AND user_id = ?", id, userId).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// UpdateResult overlays the request body's top-level keys onto the stored
// document. Nested objects are replaced wholesale, never merged recursively.
func (s *AnalysisService) UpdateResult(userId, id string, patch []byte) (*models.AnalysisResultModel, error) {
	result, err := s.GetResultByID(userId, id)
	if err != nil {
		return nil, err
	}

	doc := map[string]json.RawMessage{}
	if len(result.Document) > 0 {
		if err := json.Unmarshal(result.Document, &doc); err != nil {
			return nil, err
		}
	}

	patchDoc := map[string]json.RawMessage{}
	if err := json.Unmarshal(patch, &patchDoc); err != nil {
		return nil, err
	}
	for key, value := range patchDoc {
		doc[key] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	result.Document = datatypes.JSON(merged)

	if err := s.db.Save(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteResult hard-deletes an analysis result.
func (s *AnalysisService) DeleteResult(userId, id string) error {
	result, err := s.GetResultByID(userId, id)
	if err != nil {
		return err
	}
	return s.db.Delete(result).Error
}

// ExportResults builds an Excel report of the caller's analysis results for
// the dashboard's reports view.
func (s *AnalysisService) ExportResults(userId string) (*excelize.File, error) {
	results, err := s.GetAllResults(userId)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Dossier Number", "Borrower", "Document Type", "Processing Status", "Confidence", "Creditworthiness", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, result := range results {
		doc := map[string]interface{}{}
		if len(result.Document) > 0 {
			if err := json.Unmarshal(result.Document, &doc); err != nil {
				return nil, err
			}
		}

		values := []interface{}{
			documentString(doc, "dossier_number"),
			documentString(doc, "borrower_name"),
			documentString(doc, "document_type"),
			documentString(doc, "metadata", "processing_status"),
			documentValue(doc, "quality_metrics", "overall_confidence"),
			documentString(doc, "risk_assessment", "creditworthiness"),
			result.CreatedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// documentValue walks nested objects in a decoded analysis document.
func documentValue(doc map[string]interface{}, keys ...string) interface{} {
	var current interface{} = doc
	for _, key := range keys {
		object, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = object[key]
		if !ok {
			return nil
		}
	}
	return current
}

func documentString(doc map[string]interface{}, keys ...string) string {
	value := documentValue(doc, keys...)
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
