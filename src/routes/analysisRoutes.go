package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAnalysisRoutes(router *gin.Engine, service *services.AnalysisService) {

	analysisController := controllers.NewAnalysisController(service)

	// Protected routes
	analysis := router.Group("/analysis")
	analysis.Use(middleware.Protect())
	{
		analysis.GET("/", analysisController.GetAllResults)
		analysis.GET("/export", analysisController.ExportResults)
		analysis.GET("/:id", analysisController.GetResultByID)
		analysis.PUT("/:id", analysisController.UpdateResult)
		analysis.DELETE("/:id", analysisController.DeleteResult)
	}
}
