package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	service *services.AnalysisService
}

func NewAnalysisController(service *services.AnalysisService) *AnalysisController {
	return &AnalysisController{service: service}
}

// GetAllResults handles GET requests to list the caller's analysis results,
// newest first.
func (c *AnalysisController) GetAllResults(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	results, err := c.service.GetAllResults(userId)
	if err != nil {
		log.Printf("Error listing analysis results: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	docs, err := dtos.NewAnalysisResultDTOs(results)
	if err != nil {
		log.Printf("Error serializing analysis results: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, docs)
}

// GetResultByID handles GET requests to retrieve one analysis result
func (c *AnalysisController) GetResultByID(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	result, err := c.service.GetResultByID(userId, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Result not found or not authorized"})
			return
		}
		log.Printf("Error fetching analysis result: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	doc, err := dtos.NewAnalysisResultDTO(result)
	if err != nil {
		log.Printf("Error serializing analysis result: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// UpdateResult handles PUT requests applying a shallow top-level merge of the
// body over the stored document.
func (c *AnalysisController) UpdateResult(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patchBytes, err := json.Marshal(patch)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.UpdateResult(userId, ctx.Param("id"), patchBytes)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Result not found or not authorized"})
			return
		}
		log.Printf("Error updating analysis result: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	doc, err := dtos.NewAnalysisResultDTO(result)
	if err != nil {
		log.Printf("Error serializing analysis result: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// DeleteResult handles DELETE requests to remove one analysis result
func (c *AnalysisController) DeleteResult(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteResult(userId, ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Result not found or not authorized"})
			return
		}
		log.Printf("Error deleting analysis result: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": "Result removed"})
}

// ExportResults handles GET requests producing an Excel report of the
// caller's analysis results.
func (c *AnalysisController) ExportResults(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	report, err := c.service.ExportResults(userId)
	if err != nil {
		log.Printf("Error exporting analysis results: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="analysis-results.xlsx"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.Write(ctx.Writer); err != nil {
		log.Printf("Error writing analysis report: %v", err)
	}
}
