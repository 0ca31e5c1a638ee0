package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/activities"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func ActivitiesRoutes(r *gin.Engine) {
	activitiesRoutes := r.Group("/activities")
	activitiesRoutes.Use(middleware.JWTAuth())
	{
		activitiesRoutes.GET("", activities.GetRecentActivities)
		activitiesRoutes.GET("/:id", activities.GetActivityByID)
		activitiesRoutes.POST("", activities.CreateActivity)
		activitiesRoutes.DELETE("/:id", activities.DeleteActivity)
	}
}
