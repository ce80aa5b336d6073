package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(router *gin.Engine, service *services.UploadService) {

	uploadController := controllers.NewUploadController(service)

	// Protected routes
	upload := router.Group("/upload")
	upload.Use(middleware.Protect())
	{
		upload.GET("/", uploadController.GetAllUploadedFiles)
		upload.POST("/", uploadController.UploadFile)
		upload.GET("/:id", uploadController.GetUploadedFileByID)
		upload.DELETE("/:id", uploadController.DeleteUploadedFile)
	}
}
