package statistics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Totaux d'objectifs du rapport de performance. Valeurs fixées avec le
// métier en attendant un paramétrage par utilisateur.
const (
	totalVisits        = 25
	completedVisits    = 18
	totalQuotes        = 8
	commissionPerQuote = 570
)

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// percentageChange calcule la variation entre deux périodes et retourne
// le libellé signé ("+12.5%") et le type de tendance (positive, negative
// ou neutral) affiché sur les cartes du dashboard.
func percentageChange(current, previous float64) (string, string) {
	if previous == 0 {
		if current > 0 {
			return "+100%", "positive"
		}
		return "0%", "neutral"
	}

	// Arrondi à une décimale, sans décimale inutile: +50%, +66.7%
	change := round1((current - previous) / previous * 100)
	label := strconv.FormatFloat(change, 'f', -1, 64) + "%"
	switch {
	case change > 0:
		return "+" + label, "positive"
	case change < 0:
		return label, "negative"
	default:
		return "+" + label, "neutral"
	}
}

// formatRevenue formate un montant en euros entiers avec un espace comme
// séparateur de milliers, ex: 45 000€
func formatRevenue(amount float64) string {
	value := int64(math.Round(amount))
	negative := value < 0
	if negative {
		value = -value
	}

	digits := strconv.FormatInt(value, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return fmt.Sprintf("-%s€", grouped)
	}
	return fmt.Sprintf("%s€", grouped)
}

// monthBounds retourne le premier instant du mois courant, du mois
// suivant et du mois précédent pour la date donnée.
func monthBounds(now time.Time) (startOfMonth, startOfNextMonth, startOfPrevMonth time.Time) {
	startOfMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfNextMonth = startOfMonth.AddDate(0, 1, 0)
	startOfPrevMonth = startOfMonth.AddDate(0, -1, 0)
	return
}
