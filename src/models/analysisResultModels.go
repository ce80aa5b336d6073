package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalysisResultModel persists the external analyzer's response verbatim.
// The payload (dossier/borrower identification, bank account info, financial
// analysis, validations, transaction breakdown, quality metrics, risk
// assessment, recommendations, metadata) stays in a single JSON document so
// whatever the analyzer returns is stored and served back unchanged, and
// updates can overwrite top-level keys wholesale.
type AnalysisResultModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	UserID    string         `gorm:"type:uuid;not null;index"`
	Document  datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *AnalysisResultModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AnalysisRequest is the inbound payload of the webhook relay. All fields
// except Comments are required.
type AnalysisRequest struct {
	DossierNumber  string `json:"dossier_number"`
	BorrowerName   string `json:"borrower_name"`
	DocumentBase64 string `json:"document_base64"`
	Filename       string `json:"filename"`
	Comments       string `json:"comments"`
}
