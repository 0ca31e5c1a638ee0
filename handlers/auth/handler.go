package auth

import (
	"net/http"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/handlers/users"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidityHours = 72

// @Summary Inscription
// @Description Crée un compte utilisateur et retourne son identifiant
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "Informations de l'utilisateur"
// @Success 201 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status, error, details"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var input models.UserCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if details := users.ValidateUserCreate(input); len(details) > 0 {
		utils.SendValidationError(c, details)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Roles:     models.Roles(input.Roles),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if users.IsDuplicateEmail(err) {
			utils.SendValidationError(c, map[string]string{"email": "Cet email est déjà utilisé"})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(user.ID, "Nouvel utilisateur inscrit")
	utils.SendCreated(c, "User registered successfully", gin.H{"id": user.ID})
}

// @Summary Connexion
// @Description Vérifie les identifiants et retourne un JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Identifiants"
// @Success 200 {object} map[string]interface{} "status, data avec token et user"
// @Failure 400 {object} map[string]interface{} "status, error"
// @Failure 401 {object} map[string]interface{} "status, error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input models.UserLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.Email == "" || input.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user, tokenValidityHours)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.LogSuccessWithUser(user.ID, "Connexion réussie")
	utils.SendData(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"roles":     user.Roles,
		},
	})
}
