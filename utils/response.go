package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination lit page et limit de la query string avec les bornes
// communes aux listes (page >= 1, limit entre 1 et maxLimit).
func ParsePagination(c *gin.Context, maxLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Pagination bloc de pagination des listes
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// SendData envoie une réponse {status, data}
func SendData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"status": statusCode,
		"data":   data,
	})
}

// SendList envoie une liste, avec bloc de pagination si fourni
func SendList(c *gin.Context, data interface{}, pagination *Pagination) {
	body := gin.H{
		"status": 200,
		"data":   data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	c.JSON(200, body)
}

// SendMessage envoie une réponse {status, message}
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  statusCode,
		"message": message,
	})
}

// SendCreated envoie une réponse de création {status: 201, message, data}
func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(201, gin.H{
		"status":  201,
		"message": message,
		"data":    data,
	})
}

// SendError envoie une réponse d'erreur {status, error}
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status": statusCode,
		"error":  message,
	})
}

// SendValidationError envoie une erreur 400 avec le détail par champ
func SendValidationError(c *gin.Context, details map[string]string) {
	c.JSON(400, gin.H{
		"status":  400,
		"error":   "Validation error",
		"details": details,
	})
}
