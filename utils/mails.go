package utils

import (
	"net/smtp"
	"os"
)

// SendMail envoie un email via le SMTP Google. Sans mot de passe configuré
// l'envoi est ignoré silencieusement (environnements de dev et de test).
func SendMail(email string, message []byte) {
	from := "soleil.crm.eemi@gmail.com"
	password := os.Getenv("GOOGLE_SMTP_MDP")
	if password == "" {
		LogInfo("GOOGLE_SMTP_MDP non défini, email non envoyé")
		return
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, "Erreur lors de l'envoi de l'email")
		return
	}

	LogSuccess("Email envoyé avec succès")
}
