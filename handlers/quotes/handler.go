package quotes

import (
	"net/http"
	"strings"
	"time"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"
	mailsmodels "github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// referenceAttempts nombre d'essais quand la contrainte d'unicité
// rejette une référence générée aléatoirement.
const referenceAttempts = 3

func quoteToJSON(quote models.Quote) gin.H {
	var validUntil, signedAt interface{}
	if quote.ValidUntil != nil {
		validUntil = quote.ValidUntil.Format("2006-01-02")
	}
	if quote.SignedAt != nil {
		signedAt = quote.SignedAt.Format("2006-01-02")
	}

	return gin.H{
		"id":          quote.ID,
		"reference":   quote.Reference,
		"amount":      quote.Amount,
		"powerKwc":    quote.PowerKwc,
		"status":      quote.Status,
		"description": quote.Description,
		"validUntil":  validUntil,
		"signedAt":    signedAt,
		"client": gin.H{
			"id":       quote.Client.ID,
			"fullName": quote.Client.FullName(),
		},
		"user": gin.H{
			"id":       quote.User.ID,
			"fullName": quote.User.FullName(),
		},
		"createdAt": quote.CreatedAt,
	}
}

// @Summary Liste des devis avec pagination
// @Description Retourne les devis triés par date de création, filtrables par statut
// @Tags quotes
// @Produce json
// @Param page query int false "Numéro de page" default(1)
// @Param limit query int false "Nombre d'éléments par page" default(10)
// @Param status query string false "Filtrer par statut (all, draft, sent, signed, rejected)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data, pagination"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /quotes [get]
func GetAllQuotes(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 100)
	status := c.DefaultQuery("status", "all")

	query := db.DB.Model(&models.Quote{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error counting quotes: "+err.Error())
		return
	}

	var quotesList []models.Quote
	err := query.Preload("Client").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&quotesList).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving quotes: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(quotesList))
	for _, quote := range quotesList {
		data = append(data, quoteToJSON(quote))
	}

	utils.SendList(c, data, utils.NewPagination(page, limit, total))
}

// @Summary Voir un devis
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /quotes/{id} [get]
func GetQuoteByID(c *gin.Context) {
	var quote models.Quote
	err := db.DB.Preload("Client").Preload("User").
		First(&quote, "id = ?", c.Param("id")).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Quote not found")
		return
	}

	payload := quoteToJSON(quote)
	payload["updatedAt"] = quote.UpdatedAt
	utils.SendData(c, http.StatusOK, payload)
}

func validateQuoteCreate(input models.QuoteCreate) map[string]string {
	details := map[string]string{}
	if input.Amount <= 0 {
		details["amount"] = "Le montant doit être positif"
	}
	if input.PowerKwc != nil && *input.PowerKwc <= 0 {
		details["powerKwc"] = "La puissance doit être positive"
	}
	if input.Status != "" && !models.IsValidQuoteStatus(input.Status) {
		details["status"] = "Statut invalide"
	}
	if input.ClientID == "" {
		details["clientId"] = "Le client est obligatoire"
	}
	if input.UserID == "" {
		details["userId"] = "L'utilisateur est obligatoire"
	}
	return details
}

// @Summary Créer un devis
// @Description La référence (Q-AAAA-NNNN) est générée à la création et jamais réattribuée
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body models.QuoteCreate true "Informations du devis"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /quotes [post]
func CreateQuote(c *gin.Context) {
	var input models.QuoteCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := validateQuoteCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
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
		status = string(models.QuoteDraft)
	}

	quote := models.Quote{
		Amount:      input.Amount,
		PowerKwc:    input.PowerKwc,
		Status:      models.QuoteStatus(status),
		Description: input.Description,
		ClientID:    client.ID,
		UserID:      user.ID,
	}

	if input.ValidUntil != "" {
		validUntil, err := time.Parse("2006-01-02", input.ValidUntil)
		if err != nil {
			utils.SendValidationError(c, map[string]string{"validUntil": "Format de date invalide"})
			return
		}
		quote.ValidUntil = &validUntil
	}

	// La génération est aléatoire: en cas de collision sur la contrainte
	// d'unicité on régénère une référence et on réessaie.
	var err error
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		quote.Reference = models.GenerateQuoteReference()
		if err = db.DB.Create(&quote).Error; err == nil {
			break
		}
		if !isDuplicateReference(err) {
			break
		}
		quote.ID = ""
	}
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating quote: "+err.Error())
		return
	}

	utils.SendCreated(c, "Quote created successfully", gin.H{
		"id":        quote.ID,
		"reference": quote.Reference,
	})
}

func isDuplicateReference(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

// @Summary Modifier un devis
// @Description Mise à jour partielle: seuls les champs fournis changent
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param quote body models.QuoteUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /quotes/{id} [patch]
func UpdateQuote(c *gin.Context) {
	var quote models.Quote
	if err := db.DB.First(&quote, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Quote not found")
		return
	}

	var input models.QuoteUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	details := map[string]string{}
	if input.Amount != nil && *input.Amount <= 0 {
		details["amount"] = "Le montant doit être positif"
	}
	if input.PowerKwc != nil && *input.PowerKwc <= 0 {
		details["powerKwc"] = "La puissance doit être positive"
	}
	if input.Status != nil && !models.IsValidQuoteStatus(*input.Status) {
		details["status"] = "Statut invalide"
	}
	if input.ValidUntil != nil {
		parsed, err := time.Parse("2006-01-02", *input.ValidUntil)
		if err != nil {
			details["validUntil"] = "Format de date invalide"
		} else {
			quote.ValidUntil = &parsed
		}
	}
	if len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	if input.Amount != nil {
		quote.Amount = *input.Amount
	}
	if input.PowerKwc != nil {
		quote.PowerKwc = input.PowerKwc
	}
	if input.Status != nil {
		quote.Status = models.QuoteStatus(*input.Status)
	}
	if input.Description != nil {
		quote.Description = *input.Description
	}

	if err := db.DB.Save(&quote).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error updating quote: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Quote updated successfully")
}

// @Summary Envoyer un devis au client
// @Description Passe le devis au statut "sent" quel que soit son statut courant
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /quotes/{id}/send [patch]
func SendQuote(c *gin.Context) {
	var quote models.Quote
	err := db.DB.Preload("Client").First(&quote, "id = ?", c.Param("id")).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Quote not found")
		return
	}

	quote.Status = models.QuoteSent
	if err := db.DB.Save(&quote).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error sending quote: "+err.Error())
		return
	}

	if quote.Client.Email != "" {
		go mailsmodels.QuoteSent(quote.Client.Email, quote.Client.FullName(), quote.Reference, quote.Amount)
	}

	utils.SendMessage(c, http.StatusOK, "Quote sent successfully")
}

// @Summary Signer un devis
// @Description Passe le devis au statut "signed" et fixe signedAt à maintenant, sans précondition
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /quotes/{id}/sign [patch]
func SignQuote(c *gin.Context) {
	var quote models.Quote
	if err := db.DB.First(&quote, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Quote not found")
		return
	}

	now := time.Now()
	quote.Status = models.QuoteSigned
	quote.SignedAt = &now

	if err := db.DB.Save(&quote).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error signing quote: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Quote signed successfully")
}

// @Summary Supprimer un devis
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /quotes/{id} [delete]
func DeleteQuote(c *gin.Context) {
	var quote models.Quote
	if err := db.DB.First(&quote, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Quote not found")
		return
	}

	if err := db.DB.Delete(&quote).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deleting quote: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "Quote deleted successfully")
}
