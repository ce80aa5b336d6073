package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultAnalysisEndpoint = "http://193.168.147.110:5678/webhook-test/cafpi-document-analysis"

// WebhookService bridges a document to the external analysis endpoint with a
// single synchronous call. There is no retry, no circuit breaker and no
// timeout beyond the transport default; nothing is persisted unless the call
// fully succeeds with a parseable JSON body.
type WebhookService struct {
	db       *gorm.DB
	endpoint string
	client   *http.Client
}

// NewWebhookService creates a new instance of WebhookService. An empty
// endpoint selects the production analyzer.
func NewWebhookService(db *gorm.DB, endpoint string) *WebhookService {
	if endpoint == "" {
		endpoint = defaultAnalysisEndpoint
	}
	return &WebhookService{
		db:       db,
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
}

// ForwardDocumentAnalysis posts the case fields to the external analyzer,
// persists the returned document verbatim for the caller and hands the raw
// body back so the route can echo it unchanged.
func (s *WebhookService) ForwardDocumentAnalysis(userId string, req *models.AnalysisRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("external analysis service returned status %d", resp.StatusCode)
	}

	// The body must decode to a JSON object before anything is saved.
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	result := models.AnalysisResultModel{
		UserID:   userId,
		Document: datatypes.JSON(body),
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}

	return body, nil
}
