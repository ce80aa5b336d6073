package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FolderController struct {
	service *services.FolderService
}

func NewFolderController(service *services.FolderService) *FolderController {
	return &FolderController{service: service}
}

// callerID reads the identity the Protect middleware attached.
func callerID(ctx *gin.Context) (string, bool) {
	userId := ctx.GetString("userId")
	if userId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return "", false
	}
	return userId, true
}

// CreateFolder handles POST requests to create a new folder
func (c *FolderController) CreateFolder(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.CreateFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, validationErrors([]string{"Folder name is required"}))
		return
	}

	folder, err := c.service.CreateFolder(userId, &req)
	if err != nil {
		log.Printf("Error creating folder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusCreated, folder)
}

// GetAllFolders handles GET requests to list the caller's folders
func (c *FolderController) GetAllFolders(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	folders, err := c.service.GetAllFolders(userId)
	if err != nil {
		log.Printf("Error listing folders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, folders)
}

// GetFolderByID handles GET requests to retrieve one folder
func (c *FolderController) GetFolderByID(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	folder, err := c.service.GetFolderByID(userId, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Folder not found or not authorized"})
			return
		}
		log.Printf("Error fetching folder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, folder)
}

// UpdateFolder handles PUT requests to partially update name/description
func (c *FolderController) UpdateFolder(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.UpdateFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := c.service.UpdateFolder(userId, ctx.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Folder not found or not authorized"})
			return
		}
		log.Printf("Error updating folder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, folder)
}

// DeleteFolder handles DELETE requests. Jobs and files of the folder are not
// cascaded.
func (c *FolderController) DeleteFolder(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteFolder(userId, ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Folder not found or not authorized"})
			return
		}
		log.Printf("Error deleting folder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": "Folder removed"})
}
