package activities

import (
	"net/http"
	"strconv"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
)

func activityToJSON(activity models.Activity) gin.H {
	payload := gin.H{
		"id":          activity.ID,
		"type":        activity.Type,
		"title":       activity.Title,
		"description": activity.Description,
		"status":      activity.Status,
		"client":      nil,
		"user":        nil,
		"time":        activity.RelativeTime(),
		"createdAt":   activity.CreatedAt,
	}
	if activity.Client != nil {
		payload["client"] = gin.H{
			"id":       activity.Client.ID,
			"fullName": activity.Client.FullName(),
		}
	}
	if activity.User != nil {
		payload["user"] = gin.H{
			"id":       activity.User.ID,
			"fullName": activity.User.FullName(),
		}
	}
	return payload
}

// @Summary Liste des activités récentes
// @Description Retourne les dernières activités avec leur libellé de temps relatif
// @Tags activities
// @Produce json
// @Param limit query int false "Nombre maximum d'activités" default(10)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /activities [get]
func GetRecentActivities(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	var activitiesList []models.Activity
	err = db.DB.Preload("Client").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&activitiesList).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving activities: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(activitiesList))
	for _, activity := range activitiesList {
		data = append(data, activityToJSON(activity))
	}

	utils.SendList(c, data, nil)
}

// @Summary Voir une activité
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /activities/{id} [get]
func GetActivityByID(c *gin.Context) {
	var activity models.Activity
	if err := db.DB.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}

	utils.SendData(c, http.StatusOK, gin.H{
		"id":          activity.ID,
		"type":        activity.Type,
		"title":       activity.Title,
		"description": activity.Description,
		"status":      activity.Status,
		"createdAt":   activity.CreatedAt,
	})
}

func validateActivityCreate(input models.ActivityCreate) map[string]string {
	details := map[string]string{}
	if input.Type == "" {
		details["type"] = "Le type est obligatoire"
	} else if !models.IsValidActivityType(input.Type) {
		details["type"] = "Type d'activité invalide"
	}
	if input.Title == "" {
		details["title"] = "Le titre est obligatoire"
	} else if len(input.Title) > 255 {
		details["title"] = "Le titre est limité à 255 caractères"
	}
	if input.Status != "" && !models.IsValidActivityStatus(input.Status) {
		details["status"] = "Statut invalide"
	}
	return details
}

// @Summary Créer une activité
// @Description Les liens client/utilisateur invalides sont ignorés silencieusement
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body models.ActivityCreate true "Informations de l'activité"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /activities [post]
func CreateActivity(c *gin.Context) {
	var input models.ActivityCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := validateActivityCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	status := input.Status
	if status == "" {
		status = string(models.ActivityNew)
	}

	activity := models.Activity{
		Type:        models.ActivityType(input.Type),
		Title:       input.Title,
		Description: input.Description,
		Status:      models.ActivityStatus(status),
	}

	if input.ClientID != nil {
		var client models.Client
		if err := db.DB.First(&client, "id = ?", *input.ClientID).Error; err == nil {
			activity.ClientID = input.ClientID
		}
	}
	if input.UserID != nil {
		var user models.User
		if err := db.DB.First(&user, "id = ?", *input.UserID).Error; err == nil {
			activity.UserID = input.UserID
		}
	}

	if err := db.DB.Create(&activity).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating activity: "+err.Error())
		return
	}

	utils.SendCreated(c, "Activity created successfully", gin.H{"id": activity.ID})
}

// @Summary Supprimer une activité
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /activities/{id} [delete]
func DeleteActivity(c *gin.Context) {
	var activity models.Activity
	if err := db.DB.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}

	if err := db.DB.Delete(&activity).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deleting activity: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Activity deleted successfully")
}
