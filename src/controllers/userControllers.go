package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetProfile handles GET requests for the caller's own user record
func (c *UserController) GetProfile(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	user, err := c.service.GetUserByID(userId)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("Error fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserDTO(user))
}

// UpdateProfile handles PUT requests merging name/email onto the caller
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.UpdateProfile(userId, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("Error updating user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserDTO(user))
}

// ChangePassword handles POST requests replacing the caller's password after
// verifying the current one.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var msgs []string
	if req.CurrentPassword == "" {
		msgs = append(msgs, "Current password is required")
	}
	if len(req.NewPassword) < 6 {
		msgs = append(msgs, "New password must be at least 6 characters long")
	}
	if len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, validationErrors(msgs))
		return
	}

	if err := c.service.ChangePassword(userId, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
		default:
			log.Printf("Error changing password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": "Password updated successfully"})
}

// ExportData handles POST requests returning the caller's record as a data
// export.
func (c *UserController) ExportData(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	user, err := c.service.GetUserByID(userId)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("Error exporting user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserDTO(user))
}

// DeleteAccount handles DELETE requests removing the caller's account
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteUser(userId); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("Error deleting user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": "User account deleted successfully"})
}
