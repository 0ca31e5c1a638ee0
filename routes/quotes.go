package routes

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/quotes"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/middleware"

	"github.com/gin-gonic/gin"
)

func QuotesRoutes(r *gin.Engine) {
	quotesRoutes := r.Group("/quotes")
	quotesRoutes.Use(middleware.JWTAuth())
	{
		quotesRoutes.GET("", quotes.GetAllQuotes)
		quotesRoutes.GET("/:id", quotes.GetQuoteByID)
		quotesRoutes.POST("", quotes.CreateQuote)
		quotesRoutes.PATCH("/:id", quotes.UpdateQuote)
		quotesRoutes.PATCH("/:id/send", quotes.SendQuote)
		quotesRoutes.PATCH("/:id/sign", quotes.SignQuote)
		quotesRoutes.DELETE("/:id", quotes.DeleteQuote)
	}
}
