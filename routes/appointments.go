package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/appointments"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func AppointmentsRoutes(r *gin.Engine) {
	appointmentsRoutes := r.Group("/appointments")
	appointmentsRoutes.Use(middleware.JWTAuth())
	{
		appointmentsRoutes.GET("", appointments.GetAllAppointments)
		appointmentsRoutes.GET("/today", appointments.GetTodayAppointments)
		appointmentsRoutes.GET("/:id", appointments.GetAppointmentByID)
		appointmentsRoutes.POST("", appointments.CreateAppointment)
		appointmentsRoutes.PATCH("/:id", appointments.UpdateAppointment)
		appointmentsRoutes.DELETE("/:id", appointments.DeleteAppointment)
	}
}
