package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupWebhookRoutes(router *gin.Engine, service *services.WebhookService) {

	webhookController := controllers.NewWebhookController(service)

	// Protected routes
	webhook := router.Group("/webhook")
	webhook.Use(middleware.Protect())
	{
		webhook.POST("/cafpi-document-analysis", webhookController.ForwardDocumentAnalysis)
	}
}
