package mailsmodels

import (
	"fmt"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"
)

// QuoteSent notifie le client qu'un devis lui a été envoyé
func QuoteSent(email string, clientName string, reference string, amount float64) {
	subject := "Subject: Votre devis Soleil Énergie \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #F59E0B; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Bonjour %s</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Votre devis <strong>%s</strong> d'un montant de %.2f€ est disponible.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Votre conseiller reste à votre disposition pour toute question.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, clientName, reference, amount)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
