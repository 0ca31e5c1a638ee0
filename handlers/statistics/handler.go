package statistics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/models"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/gin-gonic/gin"
)

const (
	dashboardCacheKey = "statistics:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// buildDashboard exécute les agrégations du tableau de bord. Les requêtes
// sont toujours émises dans le même ordre: rendez-vous du mois, rendez-vous
// du mois précédent, clients actifs, clients actifs fin du mois précédent,
// devis envoyés, devis envoyés fin du mois précédent, chiffre d'affaires du
// mois, chiffre d'affaires du mois précédent.
func buildDashboard(now time.Time) (gin.H, error) {
	startOfMonth, startOfNextMonth, startOfPrevMonth := monthBounds(now)

	var appointmentsThisMonth int64
	err := db.DB.Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", startOfMonth, startOfNextMonth).
		Count(&appointmentsThisMonth).Error
	if err != nil {
		return nil, err
	}

	var appointmentsLastMonth int64
	err = db.DB.Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", startOfPrevMonth, startOfMonth).
		Count(&appointmentsLastMonth).Error
	if err != nil {
		return nil, err
	}

	var activeClients int64
	err = db.DB.Model(&models.Client{}).
		Where("status = ?", models.ClientActive).
		Count(&activeClients).Error
	if err != nil {
		return nil, err
	}

	var activeClientsLastMonth int64
	err = db.DB.Model(&models.Client{}).
		Where("status = ? AND created_at < ?", models.ClientActive, startOfMonth).
		Count(&activeClientsLastMonth).Error
	if err != nil {
		return nil, err
	}

	var quotesInProgress int64
	err = db.DB.Model(&models.Quote{}).
		Where("status = ?", models.QuoteSent).
		Count(&quotesInProgress).Error
	if err != nil {
		return nil, err
	}

	var quotesLastMonth int64
	err = db.DB.Model(&models.Quote{}).
		Where("status = ? AND created_at < ?", models.QuoteSent, startOfMonth).
		Count(&quotesLastMonth).Error
	if err != nil {
		return nil, err
	}

	var revenueThisMonth float64
	err = db.DB.Model(&models.Quote{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.QuoteSigned, startOfMonth, startOfNextMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueThisMonth).Error
	if err != nil {
		return nil, err
	}

	var revenueLastMonth float64
	err = db.DB.Model(&models.Quote{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.QuoteSigned, startOfPrevMonth, startOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueLastMonth).Error
	if err != nil {
		return nil, err
	}

	appointmentsChange, appointmentsTrend := percentageChange(float64(appointmentsThisMonth), float64(appointmentsLastMonth))
	clientsChange, clientsTrend := percentageChange(float64(activeClients), float64(activeClientsLastMonth))
	quotesChange, quotesTrend := percentageChange(float64(quotesInProgress), float64(quotesLastMonth))
	revenueChange, revenueTrend := percentageChange(revenueThisMonth, revenueLastMonth)

	return gin.H{
		"appointmentsThisMonth": gin.H{
			"value":      appointmentsThisMonth,
			"change":     appointmentsChange,
			"changeType": appointmentsTrend,
		},
		"activeClients": gin.H{
			"value":      activeClients,
			"change":     clientsChange,
			"changeType": clientsTrend,
		},
		"quotesInProgress": gin.H{
			"value":      quotesInProgress,
			"change":     quotesChange,
			"changeType": quotesTrend,
		},
		"revenue": gin.H{
			"value":      formatRevenue(revenueThisMonth),
			"change":     revenueChange,
			"changeType": revenueTrend,
		},
	}, nil
}

// @Summary Statistiques du tableau de bord
// @Description Cartes du dashboard avec comparaison mois par mois, mises en cache 60 secondes
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /statistics/dashboard [get]
func GetDashboardStats(c *gin.Context) {
	if db.Cache != nil {
		cached, err := db.Cache.Get(c.Request.Context(), dashboardCacheKey).Bytes()
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	data, err := buildDashboard(time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error computing statistics: "+err.Error())
		return
	}

	body := gin.H{
		"status": http.StatusOK,
		"data":   data,
	}

	if db.Cache != nil {
		if encoded, err := json.Marshal(body); err == nil {
			if err := db.Cache.Set(c.Request.Context(), dashboardCacheKey, encoded, dashboardCacheTTL).Err(); err != nil {
				utils.LogError(err, "Impossible d'écrire le cache du dashboard")
			}
		}
	}

	c.JSON(http.StatusOK, body)
}

// @Summary Rapport de performance commerciale
// @Description Visites, devis signés, taux de conversion et commission estimée
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 500 {object} map[string]interface{} "status, error"
// @Router /statistics/performance [get]
func GetPerformanceStats(c *gin.Context) {
	var signedQuotes int64
	err := db.DB.Model(&models.Quote{}).
		Where("status = ?", models.QuoteSigned).
		Count(&signedQuotes).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error computing statistics: "+err.Error())
		return
	}

	conversionRate := 0.0
	if totalQuotes > 0 {
		conversionRate = round1(float64(signedQuotes) / float64(totalQuotes) * 100)
	}

	utils.SendData(c, http.StatusOK, gin.H{
		"visitsCompleted": gin.H{
			"current":    completedVisits,
			"total":      totalVisits,
			"percentage": round1(float64(completedVisits) / float64(totalVisits) * 100),
		},
		"quotesSigned": gin.H{
			"current":    signedQuotes,
			"total":      totalQuotes,
			"percentage": round1(float64(signedQuotes) / float64(totalQuotes) * 100),
		},
		"conversionRate":      conversionRate,
		"estimatedCommission": signedQuotes * commissionPerQuote,
	})
}
