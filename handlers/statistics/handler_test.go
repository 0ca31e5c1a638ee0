package statistics

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/db"
	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetDashboardStats_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Les huit agrégations partent toujours dans le même ordre
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE appointment_date >= \$1 AND appointment_date < \$2`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE appointment_date >= \$1 AND appointment_date < \$2`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(20))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE status = \$1 AND created_at < \$2`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(20))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "quotes" WHERE status = \$1`).
		WithArgs("sent").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "quotes" WHERE status = \$1 AND created_at < \$2`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "quotes" WHERE status = \$1 AND created_at >= \$2 AND created_at < \$3`).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(45000.0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "quotes" WHERE status = \$1 AND created_at >= \$2 AND created_at < \$3`).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(36000.0))

	r := testutils.SetupTestRouter()
	r.GET("/statistics/dashboard", GetDashboardStats)

	req, _ := http.NewRequest(http.MethodGet, "/statistics/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})

	appointments := data["appointmentsThisMonth"].(map[string]interface{})
	assert.Equal(t, float64(12), appointments["value"])
	assert.Equal(t, "+20%", appointments["change"])
	assert.Equal(t, "positive", appointments["changeType"])

	clients := data["activeClients"].(map[string]interface{})
	assert.Equal(t, float64(20), clients["value"])
	assert.Equal(t, "+0%", clients["change"])
	assert.Equal(t, "neutral", clients["changeType"])

	quotes := data["quotesInProgress"].(map[string]interface{})
	assert.Equal(t, float64(5), quotes["value"])
	assert.Equal(t, "+100%", quotes["change"])
	assert.Equal(t, "positive", quotes["changeType"])

	revenue := data["revenue"].(map[string]interface{})
	assert.Equal(t, "45 000€", revenue["value"])
	assert.Equal(t, "+25%", revenue["change"])
	assert.Equal(t, "positive", revenue["changeType"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardStats_ServedFromCache(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	server := miniredis.RunT(t)
	originalCache := db.Cache
	db.Cache = redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer func() { db.Cache = originalCache }()

	cachedBody := `{"status":200,"data":{"cached":true}}`
	server.Set(dashboardCacheKey, cachedBody)

	// Aucune attente sqlmock: le cache doit répondre sans toucher la base
	r := testutils.SetupTestRouter()
	r.GET("/statistics/dashboard", GetDashboardStats)

	req, _ := http.NewRequest(http.MethodGet, "/statistics/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, cachedBody, resp.Body.String())
}

func TestGetDashboardStats_PopulatesCache(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	server := miniredis.RunT(t)
	originalCache := db.Cache
	db.Cache = redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer func() { db.Cache = originalCache }()

	for i := 0; i < 6; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	}
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM`).
			WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(0.0))
	}

	r := testutils.SetupTestRouter()
	r.GET("/statistics/dashboard", GetDashboardStats)

	req, _ := http.NewRequest(http.MethodGet, "/statistics/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, server.Exists(dashboardCacheKey))

	cached, err := server.Get(dashboardCacheKey)
	assert.NoError(t, err)
	assert.JSONEq(t, resp.Body.String(), cached)

	ttl := server.TTL(dashboardCacheKey)
	assert.Equal(t, dashboardCacheTTL, ttl)
}

func TestGetPerformanceStats_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "quotes" WHERE status = \$1`).
		WithArgs("signed").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(6))

	r := testutils.SetupTestRouter()
	r.GET("/statistics/performance", GetPerformanceStats)

	req, _ := http.NewRequest(http.MethodGet, "/statistics/performance", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})

	visits := data["visitsCompleted"].(map[string]interface{})
	assert.Equal(t, float64(18), visits["current"])
	assert.Equal(t, float64(25), visits["total"])
	assert.Equal(t, 72.0, visits["percentage"])

	quotes := data["quotesSigned"].(map[string]interface{})
	assert.Equal(t, float64(6), quotes["current"])
	assert.Equal(t, float64(8), quotes["total"])
	assert.Equal(t, 75.0, quotes["percentage"])

	assert.Equal(t, 75.0, data["conversionRate"])
	assert.Equal(t, float64(6*570), data["estimatedCommission"])
}
