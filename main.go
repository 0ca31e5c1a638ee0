package main

import (
	"log"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	_ "github.com/Benbecker69/dashboard-ilias-benharrat-eemi/docs"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/routes"

	"github.com/gin-gonic/gin"
)

// @title API CRM Solaire
// @version 1.0
// @description API de gestion commerciale pour une entreprise de panneaux solaires
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	// Cache Redis des statistiques, facultatif
	db.InitCache()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
