package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupResultRoutes(router *gin.Engine, service *services.ResultService) {

	resultController := controllers.NewResultController(service)

	// Protected routes; result files are reached only through their job
	results := router.Group("/results")
	results.Use(middleware.Protect())
	{
		results.GET("/job/:jobId", resultController.GetResultsForJob)
		results.GET("/:jobId/:resultId", resultController.GetResultByID)
		results.GET("/:jobId/:resultId/download", resultController.DownloadResult)
	}
}
