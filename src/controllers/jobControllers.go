package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobController struct {
	service *services.JobService
}

func NewJobController(service *services.JobService) *JobController {
	return &JobController{service: service}
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// CreateJob handles POST requests to create a job inside a folder. Unlike the
// folder routes, the job routes report malformed ids as 400.
func (c *JobController) CreateJob(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	folderId := ctx.Param("folderId")
	if !isValidID(folderId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid folder ID format"})
		return
	}

	var req models.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UploadedFileID != "" && !isValidID(req.UploadedFileID) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid uploaded file ID format"})
		return
	}

	job, err := c.service.CreateJob(userId, folderId, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Folder not found or user not authorized for this folder"})
		case errors.Is(err, services.ErrFileNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Uploaded file not found or user not authorized"})
		case errors.Is(err, services.ErrMissingFileName):
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Either uploadedFileId or fileName must be provided"})
		default:
			log.Printf("Error creating job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewProcessingJobDTO(job))
}

// GetJobsByFolder handles GET requests to list all jobs of one folder
func (c *JobController) GetJobsByFolder(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	folderId := ctx.Param("folderId")
	if !isValidID(folderId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid folder ID format"})
		return
	}

	jobs, err := c.service.GetJobsByFolder(userId, folderId)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Folder not found or user not authorized"})
			return
		}
		log.Printf("Error listing jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewProcessingJobDTOs(jobs))
}

// GetJobByID handles GET requests to retrieve one job
func (c *JobController) GetJobByID(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	jobId := ctx.Param("id")
	if !isValidID(jobId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid job ID format"})
		return
	}

	job, err := c.service.GetJobByID(userId, jobId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			ctx.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized for this job"})
		default:
			log.Printf("Error fetching job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewProcessingJobDTO(job))
}

// UpdateJob handles PUT requests setting status and/or progress
func (c *JobController) UpdateJob(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	jobId := ctx.Param("id")
	if !isValidID(jobId) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid job ID format"})
		return
	}

	var req models.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := c.service.UpdateJob(userId, jobId, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		case errors.Is(err, services.ErrNotAuthorized):
			ctx.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized to update this job"})
		default:
			log.Printf("Error updating job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewProcessingJobDTO(job))
}

// GetAllJobs handles GET requests to list every job of the caller across
// folders, with optional sort and limit query parameters.
func (c *JobController) GetAllJobs(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	jobs, err := c.service.GetAllJobs(userId, ctx.Query("sort"), limit)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewProcessingJobDTOs(jobs))
}
