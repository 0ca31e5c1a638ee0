package solarstudies

import (
	"net/http"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
)

func studyToJSON(study models.SolarStudy) gin.H {
	return gin.H{
		"id":               study.ID,
		"projectName":      study.ProjectName,
		"roofSurface":      study.RoofSurface,
		"estimatedPower":   study.EstimatedPower,
		"annualProduction": study.AnnualProduction,
		"estimatedCost":    study.EstimatedCost,
		"annualSavings":    study.AnnualSavings,
		"paybackPeriod":    study.PaybackPeriod,
		"status":           study.Status,
		"notes":            study.Notes,
		"client": gin.H{
			"id":       study.Client.ID,
			"fullName": study.Client.FullName(),
		},
		"createdAt": study.CreatedAt,
	}
}

// @Summary Liste des études solaires
// @Tags solar-studies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /solar-studies [get]
func GetAllSolarStudies(c *gin.Context) {
	var studies []models.SolarStudy
	err := db.DB.Preload("Client").Order("created_at DESC").Find(&studies).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving solar studies: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(studies))
	for _, study := range studies {
		data = append(data, studyToJSON(study))
	}

	utils.SendList(c, data, nil)
}

// @Summary Voir une étude solaire
// @Tags solar-studies
// @Produce json
// @Param id path string true "Solar study ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /solar-studies/{id} [get]
func GetSolarStudyByID(c *gin.Context) {
	var study models.SolarStudy
	err := db.DB.Preload("Client").First(&study, "id = ?", c.Param("id")).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Solar study not found")
		return
	}

	utils.SendData(c, http.StatusOK, studyToJSON(study))
}

func validateStudyCreate(input models.SolarStudyCreate) map[string]string {
	details := map[string]string{}
	if input.ProjectName == "" {
		details["projectName"] = "Le nom du projet est obligatoire"
	}
	if input.RoofSurface != nil && *input.RoofSurface <= 0 {
		details["roofSurface"] = "La surface doit être positive"
	}
	if input.EstimatedPower != nil && *input.EstimatedPower <= 0 {
		details["estimatedPower"] = "La puissance doit être positive"
	}
	if input.AnnualProduction != nil && *input.AnnualProduction <= 0 {
		details["annualProduction"] = "La production doit être positive"
	}
	if input.EstimatedCost != nil && *input.EstimatedCost <= 0 {
		details["estimatedCost"] = "Le coût doit être positif"
	}
	if input.AnnualSavings != nil && *input.AnnualSavings <= 0 {
		details["annualSavings"] = "Les économies doivent être positives"
	}
	if input.PaybackPeriod != nil && *input.PaybackPeriod <= 0 {
		details["paybackPeriod"] = "La durée de retour doit être positive"
	}
	if input.Status != "" && !models.IsValidStudyStatus(input.Status) {
		details["status"] = "Statut invalide"
	}
	if input.ClientID == "" {
		details["clientId"] = "Le client est obligatoire"
	}
	return details
}

// @Summary Créer une étude solaire
// @Tags solar-studies
// @Accept json
// @Produce json
// @Param study body models.SolarStudyCreate true "Informations de l'étude"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /solar-studies [post]
func CreateSolarStudy(c *gin.Context) {
	var input models.SolarStudyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := validateStudyCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	var client models.Client
	if err := db.DB.First(&client, "id = ?", input.ClientID).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Client not found")
		return
	}

	status := input.Status
	if status == "" {
		status = string(models.StudyPending)
	}

	study := models.SolarStudy{
		ProjectName:      input.ProjectName,
		RoofSurface:      input.RoofSurface,
		EstimatedPower:   input.EstimatedPower,
		AnnualProduction: input.AnnualProduction,
		EstimatedCost:    input.EstimatedCost,
		AnnualSavings:    input.AnnualSavings,
		PaybackPeriod:    input.PaybackPeriod,
		Status:           models.StudyStatus(status),
		Notes:            input.Notes,
		ClientID:         client.ID,
	}

	if err := db.DB.Create(&study).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating solar study: "+err.Error())
		return
	}

	utils.SendCreated(c, "Solar study created successfully", gin.H{"id": study.ID})
}

// @Summary Modifier une étude solaire
// @Description Mise à jour partielle: seuls les champs fournis changent
// @Tags solar-studies
// @Accept json
// @Produce json
// @Param id path string true "Solar study ID"
// @Param study body models.SolarStudyUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /solar-studies/{id} [patch]
func UpdateSolarStudy(c *gin.Context) {
	var study models.SolarStudy
	if err := db.DB.First(&study, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Solar study not found")
		return
	}

	var input models.SolarStudyUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.Status != nil && !models.IsValidStudyStatus(*input.Status) {
		utils.SendValidationError(c, map[string]string{"status": "Statut invalide"})
		return
	}

	if input.ProjectName != nil {
		study.ProjectName = *input.ProjectName
	}
	if input.RoofSurface != nil {
		study.RoofSurface = input.RoofSurface
	}
	if input.EstimatedPower != nil {
		study.EstimatedPower = input.EstimatedPower
	}
	if input.AnnualProduction != nil {
		study.AnnualProduction = input.AnnualProduction
	}
	if input.EstimatedCost != nil {
		study.EstimatedCost = input.EstimatedCost
	}
	if input.AnnualSavings != nil {
		study.AnnualSavings = input.AnnualSavings
	}
	if input.PaybackPeriod != nil {
		study.PaybackPeriod = input.PaybackPeriod
	}
	if input.Status != nil {
		study.Status = models.StudyStatus(*input.Status)
	}
	if input.Notes != nil {
		study.Notes = *input.Notes
	}

	if err := db.DB.Save(&study).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error updating solar study: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Solar study updated successfully")
}

// @Summary Supprimer une étude solaire
// @Tags solar-studies
// @Produce json
// @Param id path string true "Solar study ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /solar-studies/{id} [delete]
func DeleteSolarStudy(c *gin.Context) {
	var study models.SolarStudy
	if err := db.DB.First(&study, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Solar study not found")
		return
	}

	if err := db.DB.Delete(&study).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deleting solar study: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Solar study deleted successfully")
}
