package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/users"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("", users.GetAllUsers)
		usersRoutes.GET("/:id", users.GetUserByID)
	}

	// Gestion des comptes réservée aux administrateurs
	usersAdminRoutes := r.Group("/users")
	usersAdminRoutes.Use(middleware.JWTAuth())
	usersAdminRoutes.Use(middleware.AdminAuth())
	{
		usersAdminRoutes.POST("", users.CreateUser)
		usersAdminRoutes.PATCH("/:id", users.UpdateUser)
		usersAdminRoutes.DELETE("/:id", users.DeleteUser)
	}
}
