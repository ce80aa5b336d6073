package controllers

import (
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	service *services.WebhookService
}

func NewWebhookController(service *services.WebhookService) *WebhookController {
	return &WebhookController{service: service}
}

// ForwardDocumentAnalysis handles POST requests relaying a base64 document to
// the external analyzer. The external response body is echoed back unchanged;
// any failure of the outbound call is a generic 500 with nothing persisted.
func (c *WebhookController) ForwardDocumentAnalysis(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DossierNumber == "" || req.BorrowerName == "" || req.DocumentBase64 == "" || req.Filename == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
		return
	}

	body, err := c.service.ForwardDocumentAnalysis(userId, &req)
	if err != nil {
		log.Printf("Error forwarding webhook: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
