package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/mail"

	"github.com/FinDocs/FinDocs-Backend/src/dtos"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.UserService
}

func NewAuthController(service *services.UserService) *AuthController {
	return &AuthController{service: service}
}

// validationErrors builds the structured error list the validated routes use.
func validationErrors(msgs []string) gin.H {
	errs := make([]gin.H, 0, len(msgs))
	for _, msg := range msgs {
		errs = append(errs, gin.H{"msg": msg})
	}
	return gin.H{"errors": errs}
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// Register handles POST requests to create a new user account
func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var msgs []string
	if req.Name == "" {
		msgs = append(msgs, "Name is required")
	}
	if !isValidEmail(req.Email) {
		msgs = append(msgs, "Valid email is required")
	}
	if len(req.Password) < 6 {
		msgs = append(msgs, "Password must be at least 6 characters long")
	}
	if len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, validationErrors(msgs))
		return
	}

	user, err := c.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, validationErrors([]string{"User already exists"}))
			return
		}
		log.Printf("Error registering user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusCreated, dtos.NewUserDTO(user))
}

// Login handles POST requests to authenticate a user. Every credential
// failure reports the same generic message.
func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var msgs []string
	if !isValidEmail(req.Email) {
		msgs = append(msgs, "Valid email is required")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		ctx.JSON(http.StatusBadRequest, validationErrors(msgs))
		return
	}

	user, token, err := c.service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, validationErrors([]string{"Invalid credentials"}))
			return
		}
		log.Printf("Error authenticating user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  dtos.NewUserDTO(user),
		"token": token,
	})
}
