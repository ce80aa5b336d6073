package dtos

import (
	"encoding/json"

	"github.com/FinDocs/FinDocs-Backend/src/models"
)

// NewAnalysisResultDTO rebuilds the outward document: the stored external
// payload with the record identity and timestamps overlaid on its top-level
// keys.
func NewAnalysisResultDTO(result *models.AnalysisResultModel) (map[string]interface{}, error) {
	doc := map[string]interface{}{}
	if len(result.Document) > 0 {
		if err := json.Unmarshal(result.Document, &doc); err != nil {
			return nil, err
		}
	}
	doc["id"] = result.ID
	doc["userId"] = result.UserID
	doc["createdAt"] = result.CreatedAt
	doc["updatedAt"] = result.UpdatedAt
	return doc, nil
}

func NewAnalysisResultDTOs(results []models.AnalysisResultModel) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(results))
	for i := range results {
		doc, err := NewAnalysisResultDTO(&results[i])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
