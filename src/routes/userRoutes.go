package routes

import (
	"github.com/FinDocs/FinDocs-Backend/src/controllers"
	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {

	userController := controllers.NewUserController(service)

	// Protected routes
	user := router.Group("/user")
	user.Use(middleware.Protect())
	{
		user.GET("/profile", userController.GetProfile)
		user.PUT("/profile", userController.UpdateProfile)
		user.POST("/change-password", userController.ChangePassword)
		user.POST("/export", userController.ExportData)
		user.DELETE("/", userController.DeleteAccount)
	}
}
