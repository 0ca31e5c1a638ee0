package clients

import (
	"errors"
	"net/http"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func clientToJSON(client models.Client) gin.H {
	return gin.H{
		"id":           client.ID,
		"firstName":    client.FirstName,
		"lastName":     client.LastName,
		"fullName":     client.FullName(),
		"email":        client.Email,
		"phone":        client.Phone,
		"address":      client.Address,
		"postalCode":   client.PostalCode,
		"city":         client.City,
		"status":       client.Status,
		"notes":        client.Notes,
		"assignedToId": client.AssignedToID,
		"createdAt":    client.CreatedAt,
		"updatedAt":    client.UpdatedAt,
	}
}

// @Summary Liste des clients avec pagination
// @Description Retourne les clients triés par date de création, filtrables par statut
// @Tags clients
// @Produce json
// @Param page query int false "Numéro de page" default(1)
// @Param limit query int false "Nombre d'éléments par page" default(10)
// @Param status query string false "Filtrer par statut (all, prospect, active, inactive)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data, pagination"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /clients [get]
func GetAllClients(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 100)
	status := c.DefaultQuery("status", "all")

	query := db.DB.Model(&models.Client{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error counting clients: "+err.Error())
		return
	}

	var clientsList []models.Client
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clientsList).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving clients: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(clientsList))
	for _, client := range clientsList {
		data = append(data, clientToJSON(client))
	}

	utils.SendList(c, data, utils.NewPagination(page, limit, total))
}

// @Summary Voir un client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /clients/{id} [get]
func GetClientByID(c *gin.Context) {
	var client models.Client
	if err := db.DB.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Client not found")
		return
	}

	utils.SendData(c, http.StatusOK, clientToJSON(client))
}

func validateClientCreate(input models.ClientCreate) map[string]string {
	details := map[string]string{}
	if input.FirstName == "" {
		details["firstName"] = "Le prénom est obligatoire"
	}
	if input.LastName == "" {
		details["lastName"] = "Le nom est obligatoire"
	}
	if input.Email == "" {
		details["email"] = "L'email est obligatoire"
	} else if !utils.ValidateEmail(input.Email) {
		details["email"] = "Format d'email invalide"
	}
	if input.Phone == "" {
		details["phone"] = "Le téléphone est obligatoire"
	}
	if input.Status != "" && !models.IsValidClientStatus(input.Status) {
		details["status"] = "Statut invalide"
	}
	return details
}

// @Summary Créer un client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body models.ClientCreate true "Informations du client"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	var input models.ClientCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := validateClientCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	status := input.Status
	if status == "" {
		status = string(models.ClientProspect)
	}

	if input.AssignedToID != nil {
		var user models.User
		if err := db.DB.First(&user, "id = ?", *input.AssignedToID).Error; err != nil {
			utils.SendError(c, http.StatusBadRequest, "User not found")
			return
		}
	}

	client := models.Client{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PostalCode:   input.PostalCode,
		City:         input.City,
		Status:       models.ClientStatus(status),
		Notes:        input.Notes,
		AssignedToID: input.AssignedToID,
	}

	if err := db.DB.Create(&client).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating client: "+err.Error())
		return
	}

	utils.LogSuccess("Client créé: " + client.ID)
	utils.SendCreated(c, "Client created successfully", gin.H{
		"id":        client.ID,
		"firstName": client.FirstName,
		"lastName":  client.LastName,
		"email":     client.Email,
	})
}

// @Summary Modifier un client
// @Description Mise à jour partielle: seuls les champs fournis changent
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body models.ClientUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /clients/{id} [patch]
func UpdateClient(c *gin.Context) {
	var client models.Client
	if err := db.DB.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Client not found")
		return
	}

	var input models.ClientUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	details := map[string]string{}
	if input.Email != nil && !utils.ValidateEmail(*input.Email) {
		details["email"] = "Format d'email invalide"
	}
	if input.Status != nil && !models.IsValidClientStatus(*input.Status) {
		details["status"] = "Statut invalide"
	}
	if len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.PostalCode != nil {
		client.PostalCode = *input.PostalCode
	}
	if input.City != nil {
		client.City = *input.City
	}
	if input.Status != nil {
		client.Status = models.ClientStatus(*input.Status)
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.AssignedToID != nil {
		var user models.User
		if err := db.DB.First(&user, "id = ?", *input.AssignedToID).Error; err != nil {
			utils.SendError(c, http.StatusBadRequest, "User not found")
			return
		}
		client.AssignedToID = input.AssignedToID
	}

	if err := db.DB.Save(&client).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error updating client: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  200,
		"message": "Client updated successfully",
		"data": gin.H{
			"id":        client.ID,
			"firstName": client.FirstName,
			"lastName":  client.LastName,
		},
	})
}

// @Summary Supprimer un client
// @Description Supprime aussi ses rendez-vous, devis et études solaires (même transaction)
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	clientID := c.Param("id")

	var client models.Client
	if err := db.DB.First(&client, "id = ?", clientID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Client not found")
		return
	}

	// Suppression en cascade des dépendants, le tout dans une transaction
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", clientID).Delete(&models.Quote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", clientID).Delete(&models.SolarStudy{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Client not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Error deleting client: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Client deleted successfully")
}
