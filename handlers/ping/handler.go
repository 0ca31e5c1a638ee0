package ping

import (
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandlePing gère la logique de l'endpoint ping
// @Summary Ping test
// @Description Endpoint de test qui répond pong
// @Tags test
// @Produce json
// @Success 200 {object} map[string]interface{} "status, data"
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	utils.SendData(c, 200, gin.H{
		"message": "pong",
	})
}
