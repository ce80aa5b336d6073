package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	service *services.UploadService
}

func NewUploadController(service *services.UploadService) *UploadController {
	return &UploadController{service: service}
}

// UploadFile handles POST requests carrying one multipart file under the
// fixed "file" field. The whole body is read into memory and stored with the
// metadata record.
func (c *UploadController) UploadFile(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "No file uploaded"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	uploaded := models.UploadedFileModel{
		Name:    header.Filename,
		Type:    contentType,
		Size:    int64(len(content)),
		Status:  "uploaded",
		UserID:  userId,
		Content: content,
	}

	saved, err := c.service.SaveUploadedFile(&uploaded)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	ctx.JSON(http.StatusCreated, dtos.NewUploadedFileDTO(saved))
}

// GetAllUploadedFiles handles GET requests to list the caller's files,
// metadata only.
func (c *UploadController) GetAllUploadedFiles(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	files, err := c.service.GetAllUploadedFiles(userId)
	if err != nil {
		log.Printf("Error listing uploaded files: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUploadedFileDTOs(files))
}

// GetUploadedFileByID handles GET requests for one file's metadata
func (c *UploadController) GetUploadedFileByID(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	file, err := c.service.GetUploadedFileByID(userId, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "File not found or not authorized"})
			return
		}
		log.Printf("Error fetching uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUploadedFileDTO(file))
}

// DeleteUploadedFile handles DELETE requests to remove a file record
func (c *UploadController) DeleteUploadedFile(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteUploadedFile(userId, ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "File not found or not authorized"})
			return
		}
		log.Printf("Error deleting uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": "Uploaded file record removed"})
}
