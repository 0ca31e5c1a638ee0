package clients

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

	"github.com/DATA-DOG/go-sqlmock"
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

func TestGetAllClients_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))

	rows := mock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "status", "created_at"}).
		AddRow("client-1", "Marie", "Durand", "marie.durand@email.com", "06 12 34 56 78", "prospect", time.Now()).
		AddRow("client-2", "Paul", "Martin", "paul.martin@email.com", "06 11 22 33 44", "active", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "clients" ORDER BY created_at DESC LIMIT \$1`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/clients", GetAllClients)

	req, _ := http.NewRequest(http.MethodGet, "/clients", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)

	first, ok := data[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Marie Durand", first["fullName"])

	pagination, ok := response["pagination"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(1), pagination["pages"])
}

func TestGetAllClients_FilterByStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))

	rows := mock.NewRows([]string{"id", "first_name", "last_name", "status"}).
		AddRow("client-2", "Paul", "Martin", "active")
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/clients", GetAllClients)

	req, _ := http.NewRequest(http.MethodGet, "/clients?status=active", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestGetClientByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/clients/:id", GetClientByID)

	req, _ := http.NewRequest(http.MethodGet, "/clients/inconnu", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Client not found", response["error"])
}

func TestCreateClient_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "clients" (.+)`).
		WillReturnRows(mock.NewRows([]string{"status"}).AddRow("prospect"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/clients", CreateClient)

	clientData := map[string]string{
		"firstName": "Marie",
		"lastName":  "Durand",
		"email":     "marie.durand@email.com",
		"phone":     "06 12 34 56 78",
	}
	jsonData, _ := json.Marshal(clientData)

	req, _ := http.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Client created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Marie", data["firstName"])
}

func TestCreateClient_ValidationError(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/clients", CreateClient)

	clientData := map[string]string{
		"firstName": "Marie",
		"email":     "pas-un-email",
	}
	jsonData, _ := json.Marshal(clientData)

	req, _ := http.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Validation error", response["error"])

	details := response["details"].(map[string]interface{})
	assert.Equal(t, "Format d'email invalide", details["email"])
	assert.Equal(t, "Le nom est obligatoire", details["lastName"])
	assert.Equal(t, "Le téléphone est obligatoire", details["phone"])
}

func TestCreateClient_InvalidStatus(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/clients", CreateClient)

	clientData := map[string]string{
		"firstName": "Marie",
		"lastName":  "Durand",
		"email":     "marie.durand@email.com",
		"phone":     "06 12 34 56 78",
		"status":    "vip",
	}
	jsonData, _ := json.Marshal(clientData)

	req, _ := http.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	details := response["details"].(map[string]interface{})
	assert.Equal(t, "Statut invalide", details["status"])
}

func TestDeleteClient_CascadesDependents(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("client-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow("client-1", "Marie", "Durand"))

	// Les dépendants partent dans la même transaction que le client
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE client_id = \$1`).
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "quotes" WHERE client_id = \$1`).
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "solar_studies" WHERE client_id = \$1`).
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "clients" WHERE "clients"."id" = \$1`).
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/clients/:id", DeleteClient)

	req, _ := http.NewRequest(http.MethodDelete, "/clients/client-1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Client deleted successfully", response["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
