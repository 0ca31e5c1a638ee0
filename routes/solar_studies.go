package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/solarstudies"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func SolarStudiesRoutes(r *gin.Engine) {
	studiesRoutes := r.Group("/solar-studies")
	studiesRoutes.Use(middleware.JWTAuth())
	{
		studiesRoutes.GET("", solarstudies.GetAllSolarStudies)
		studiesRoutes.GET("/:id", solarstudies.GetSolarStudyByID)
		studiesRoutes.POST("", solarstudies.CreateSolarStudy)
		studiesRoutes.PATCH("/:id", solarstudies.UpdateSolarStudy)
		studiesRoutes.DELETE("/:id", solarstudies.DeleteSolarStudy)
	}
}
