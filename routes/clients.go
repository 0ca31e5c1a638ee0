package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/clients"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func ClientsRoutes(r *gin.Engine) {
	clientsRoutes := r.Group("/clients")
	clientsRoutes.Use(middleware.JWTAuth())
	{
		clientsRoutes.GET("", clients.GetAllClients)
		clientsRoutes.GET("/:id", clients.GetClientByID)
		clientsRoutes.POST("", clients.CreateClient)
		clientsRoutes.PATCH("/:id", clients.UpdateClient)
		clientsRoutes.PUT("/:id", clients.UpdateClient)
		clientsRoutes.DELETE("/:id", clients.DeleteClient)
	}
}
