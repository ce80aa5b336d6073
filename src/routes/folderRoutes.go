package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFolderRoutes(router *gin.Engine, service *services.FolderService) {

	folderController := controllers.NewFolderController(service)

	// Protected routes
	folders := router.Group("/folders")
	folders.Use(middleware.Protect())
	{
		folders.GET("/", folderController.GetAllFolders)
		folders.POST("/", folderController.CreateFolder)
		folders.GET("/:id", folderController.GetFolderByID)
		folders.PUT("/:id", folderController.UpdateFolder)
		folders.DELETE("/:id", folderController.DeleteFolder)
	}
}
