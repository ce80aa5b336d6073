package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ResultController struct {
	service *services.ResultService
}

func NewResultController(service *services.ResultService) *ResultController {
	return &ResultController{service: service}
}

// GetResultsForJob handles GET requests to list a job's result files,
// metadata only.
func (c *ResultController) GetResultsForJob(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	jobId := ctx.Param("jobId")
	if !isValidID(jobId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid job ID format"})
		return
	}

	results, err := c.service.GetResultsForJob(userId, jobId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Processing job not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			ctx.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized for this job"})
		default:
			log.Printf("Error listing result files: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewResultFileDTOs(results))
}

// GetResultByID handles GET requests for one result file's metadata
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	jobId := ctx.Param("jobId")
	resultId := ctx.Param("resultId")
	if !isValidID(jobId) || !isValidID(resultId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid job or result ID format"})
		return
	}

	result, err := c.service.GetResultByID(userId, jobId, resultId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Processing job not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			ctx.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized for this job"})
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Result file not found in this job"})
		default:
			log.Printf("Error fetching result file: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewResultFileDTO(result))
}

// DownloadResult handles GET requests returning the stored bytes with the
// declared type and the file name as the suggested download name.
func (c *ResultController) DownloadResult(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	jobId := ctx.Param("jobId")
	resultId := ctx.Param("resultId")
	if !isValidID(jobId) || !isValidID(resultId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid job or result ID format"})
		return
	}

	result, err := c.service.DownloadResult(userId, jobId, resultId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Processing job not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			ctx.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized for this job"})
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Result file not found or content is missing"})
		default:
			log.Printf("Error downloading result file: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Name))
	ctx.Data(http.StatusOK, result.Type, result.Content)
}
