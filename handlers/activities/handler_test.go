package activities

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/testutils"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetRecentActivities_DefaultLimit(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "type", "title", "status", "created_at"}).
		AddRow("act-1", "devis", "Devis signé", "done", time.Now().Add(-5*time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "activities" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/activities", GetRecentActivities)

	req, _ := http.NewRequest(http.MethodGet, "/activities", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Il y a 5 minutes", first["time"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentActivities_LimitClampedTo50(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "activities" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/activities", GetRecentActivities)

	req, _ := http.NewRequest(http.MethodGet, "/activities?limit=500", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_IgnoresUnknownClientRef(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// La référence client invalide est ignorée, l'activité est créée sans lien
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "activities" (.+)`).
		WillReturnRows(mock.NewRows([]string{"status"}).AddRow("new"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/activities", CreateActivity)

	activityData := map[string]string{
		"type":     "client",
		"title":    "Nouveau prospect",
		"clientId": "inconnu",
	}
	jsonData, _ := json.Marshal(activityData)

	req, _ := http.NewRequest(http.MethodPost, "/activities", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_InvalidType(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/activities", CreateActivity)

	activityData := map[string]string{
		"type":  "reunion",
		"title": "Réunion d'équipe",
	}
	jsonData, _ := json.Marshal(activityData)

	req, _ := http.NewRequest(http.MethodPost, "/activities", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	details := response["details"].(map[string]interface{})
	assert.Equal(t, "Type d'activité invalide", details["type"])
}

func TestDeleteActivity_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "activities" WHERE id = \$1 ORDER BY "activities"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/activities/:id", DeleteActivity)

	req, _ := http.NewRequest(http.MethodDelete, "/activities/inconnu", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
