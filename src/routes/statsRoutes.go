package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStatsRoutes(router *gin.Engine, service *services.StatsService) {

	statsController := controllers.NewStatsController(service)

	// Protected routes
	stats := router.Group("/stats")
	stats.Use(middleware.Protect())
	{
		stats.GET("/", statsController.GetDashboardStats)
	}
}
