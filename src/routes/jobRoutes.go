package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupJobRoutes(router *gin.Engine, service *services.JobService) {

	jobController := controllers.NewJobController(service)

	// Protected routes
	jobs := router.Group("/jobs")
	jobs.Use(middleware.Protect())
	{
		jobs.GET("/", jobController.GetAllJobs)
		jobs.GET("/folder/:folderId", jobController.GetJobsByFolder)
		jobs.POST("/folder/:folderId", jobController.CreateJob)
		jobs.GET("/:id", jobController.GetJobByID)
		jobs.PUT("/:id", jobController.UpdateJob)
	}
}
