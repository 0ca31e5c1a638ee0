package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/statistics"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func StatisticsRoutes(r *gin.Engine) {
	statisticsRoutes := r.Group("/statistics")
	statisticsRoutes.Use(middleware.JWTAuth())
	{
		statisticsRoutes.GET("/dashboard", statistics.GetDashboardStats)
		statisticsRoutes.GET("/performance", statistics.GetPerformanceStats)
	}
}
