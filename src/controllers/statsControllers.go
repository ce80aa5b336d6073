package controllers

import (
	"log"
	"net/http"

	"github.com/FinDocs/FinDocs-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// GetDashboardStats handles GET requests for the dashboard rollups
func (c *StatsController) GetDashboardStats(ctx *gin.Context) {
	userId, ok := callerID(ctx)
	if !ok {
		return
	}

	stats, err := c.service.GetDashboardStats(userId)
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
