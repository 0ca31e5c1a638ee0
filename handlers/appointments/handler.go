package appointments

import (
	"net/http"
	"time"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
)

func appointmentToJSON(appointment models.Appointment) gin.H {
	return gin.H{
		"id":              appointment.ID,
		"appointmentDate": appointment.AppointmentDate,
		"type":            appointment.Type,
		"status":          appointment.Status,
		"address":         appointment.Address,
		"notes":           appointment.Notes,
		"client": gin.H{
			"id":       appointment.Client.ID,
			"fullName": appointment.Client.FullName(),
			"phone":    appointment.Client.Phone,
		},
		"user": gin.H{
			"id":       appointment.User.ID,
			"fullName": appointment.User.FullName(),
		},
		"createdAt": appointment.CreatedAt,
	}
}

// @Summary Liste des rendez-vous
// @Description Retourne les rendez-vous triés par date décroissante, filtrables par statut et type
// @Tags appointments
// @Produce json
// @Param page query int false "Numéro de page" default(1)
// @Param limit query int false "Nombre d'éléments par page" default(10)
// @Param status query string false "Filtrer par statut"
// @Param type query string false "Filtrer par type"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /appointments [get]
func GetAllAppointments(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 100)

	query := db.DB.Preload("Client").Preload("User").Model(&models.Appointment{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if appointmentType := c.Query("type"); appointmentType != "" {
		query = query.Where("type = ?", appointmentType)
	}

	var appointmentsList []models.Appointment
	err := query.Order("appointment_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&appointmentsList).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving appointments: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(appointmentsList))
	for _, appointment := range appointmentsList {
		data = append(data, appointmentToJSON(appointment))
	}

	utils.SendList(c, data, nil)
}

// @Summary Rendez-vous du jour
// @Description Retourne les rendez-vous d'aujourd'hui non annulés, triés par heure
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /appointments/today [get]
func GetTodayAppointments(c *gin.Context) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var appointmentsList []models.Appointment
	err := db.DB.Preload("Client").
		Where("appointment_date >= ? AND appointment_date < ?", startOfDay, endOfDay).
		Where("status <> ?", models.AppointmentCancelled).
		Order("appointment_date ASC").
		Find(&appointmentsList).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving appointments: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(appointmentsList))
	for _, appointment := range appointmentsList {
		data = append(data, gin.H{
			"id":              appointment.ID,
			"appointmentDate": appointment.AppointmentDate,
			"time":            appointment.AppointmentDate.Format("15:04"),
			"type":            appointment.Type,
			"status":          appointment.Status,
			"address":         appointment.Address,
			"client": gin.H{
				"id":       appointment.Client.ID,
				"fullName": appointment.Client.FullName(),
				"phone":    appointment.Client.Phone,
			},
		})
	}

	utils.SendList(c, data, nil)
}

// @Summary Voir un rendez-vous
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /appointments/{id} [get]
func GetAppointmentByID(c *gin.Context) {
	var appointment models.Appointment
	err := db.DB.Preload("Client").Preload("User").
		First(&appointment, "id = ?", c.Param("id")).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	utils.SendData(c, http.StatusOK, appointmentToJSON(appointment))
}

func validateAppointmentCreate(input models.AppointmentCreate) map[string]string {
	details := map[string]string{}
	if input.AppointmentDate == "" {
		details["appointmentDate"] = "La date du rendez-vous est obligatoire"
	}
	if input.Type == "" {
		details["type"] = "Le type est obligatoire"
	} else if !models.IsValidAppointmentType(input.Type) {
		details["type"] = "Type de rendez-vous invalide"
	}
	if input.Status != "" && !models.IsValidAppointmentStatus(input.Status) {
		details["status"] = "Statut invalide"
	}
	return details
}

// @Summary Créer un rendez-vous
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.AppointmentCreate true "Informations du rendez-vous"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /appointments [post]
func CreateAppointment(c *gin.Context) {
	var input models.AppointmentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := validateAppointmentCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	appointmentDate, err := time.Parse(time.RFC3339, input.AppointmentDate)
	if err != nil {
		utils.SendValidationError(c, map[string]string{"appointmentDate": "Format de date invalide"})
		return
	}

	var client models.Client
	if err := db.DB.First(&client, "id = ?", input.ClientID).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Client not found")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", input.UserID).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "User not found")
		return
	}

	status := input.Status
	if status == "" {
		status = string(models.AppointmentScheduled)
	}

	appointment := models.Appointment{
		AppointmentDate: appointmentDate,
		Type:            input.Type,
		Status:          models.AppointmentStatus(status),
		Address:         input.Address,
		Notes:           input.Notes,
		ClientID:        client.ID,
		UserID:          user.ID,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating appointment: "+err.Error())
		return
	}

	utils.SendCreated(c, "Appointment created successfully", gin.H{"id": appointment.ID})
}

// @Summary Modifier un rendez-vous
// @Description Mise à jour partielle: seuls les champs fournis changent
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param appointment body models.AppointmentUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /appointments/{id} [patch]
func UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var input models.AppointmentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	details := map[string]string{}
	if input.Type != nil && !models.IsValidAppointmentType(*input.Type) {
		details["type"] = "Type de rendez-vous invalide"
	}
	if input.Status != nil && !models.IsValidAppointmentStatus(*input.Status) {
		details["status"] = "Statut invalide"
	}
	if input.AppointmentDate != nil {
		parsed, err := time.Parse(time.RFC3339, *input.AppointmentDate)
		if err != nil {
			details["appointmentDate"] = "Format de date invalide"
		} else {
			appointment.AppointmentDate = parsed
		}
	}
	if len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	if input.Type != nil {
		appointment.Type = *input.Type
	}
	if input.Status != nil {
		appointment.Status = models.AppointmentStatus(*input.Status)
	}
	if input.Address != nil {
		appointment.Address = *input.Address
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error updating appointment: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Appointment updated successfully")
}

// @Summary Supprimer un rendez-vous
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /appointments/{id} [delete]
func DeleteAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deleting appointment: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Appointment deleted successfully")
}
