package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func userToJSON(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"fullName":  user.FullName(),
		"phone":     user.Phone,
		"roles":     user.Roles,
		"createdAt": user.CreatedAt,
	}
}

// @Summary Liste des utilisateurs
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /users [get]
func GetAllUsers(c *gin.Context) {
	var usersList []models.User
	if err := db.DB.Order("created_at DESC").Find(&usersList).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving users: "+err.Error())
		return
	}

	data := make([]gin.H, 0, len(usersList))
	for _, user := range usersList {
		data = append(data, userToJSON(user))
	}

	utils.SendList(c, data, nil)
}

// @Summary Voir un utilisateur
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /users/{id} [get]
func GetUserByID(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	utils.SendData(c, http.StatusOK, userToJSON(user))
}

// ValidateUserCreate contrôle les champs d'inscription et retourne le
// détail des erreurs par champ.
func ValidateUserCreate(input models.UserCreate) map[string]string {
	details := map[string]string{}
	if input.Email == "" {
		details["email"] = "L'email est obligatoire"
	} else if !utils.ValidateEmail(input.Email) {
		details["email"] = "Format d'email invalide"
	}
	if input.Password == "" {
		details["password"] = "Le mot de passe est obligatoire"
	} else if len(input.Password) < 6 {
		details["password"] = "Le mot de passe doit contenir au moins 6 caractères"
	}
	if input.FirstName == "" {
		details["firstName"] = "Le prénom est obligatoire"
	}
	if input.LastName == "" {
		details["lastName"] = "Le nom est obligatoire"
	}
	return details
}

// @Summary Créer un utilisateur
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "Informations de l'utilisateur"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Router /users [post]
func CreateUser(c *gin.Context) {
	var input models.UserCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := ValidateUserCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Erreur lors du hash du mot de passe")
		return
	}

	user := models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Roles:     models.Roles(input.Roles),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if IsDuplicateEmail(err) {
			utils.SendValidationError(c, map[string]string{"email": "Cet email est déjà utilisé"})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	utils.SendCreated(c, "User created successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// IsDuplicateEmail détecte une violation de la contrainte d'unicité sur l'email.
func IsDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

// @Summary Modifier un utilisateur
// @Description Mise à jour partielle: seuls les champs fournis changent
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.UserUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.Email != nil {
		if !utils.ValidateEmail(*input.Email) {
			utils.SendValidationError(c, map[string]string{"email": "Format d'email invalide"})
			return
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Roles != nil {
		user.Roles = models.Roles(input.Roles)
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Erreur lors du hash du mot de passe")
			return
		}
		user.Password = string(hashedPassword)
	}

	if err := db.DB.Save(&user).Error; err != nil {
		if IsDuplicateEmail(err) {
			utils.SendValidationError(c, map[string]string{"email": "Cet email est déjà utilisé"})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Error updating user: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "User updated successfully")
}

// @Summary Supprimer un utilisateur
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 404 {object} map[string]interface{} "status, error"
// @Router /users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error deleting user: "+err.Error())
		return
	}

	utils.SendMessage(c, http.StatusOK, "User deleted successfully")
}
