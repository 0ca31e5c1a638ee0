package solarstudies

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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

func TestCreateSolarStudy_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("client-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow("client-1", "Marie", "Durand"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solar_studies" (.+)`).
		WillReturnRows(mock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/solar-studies", CreateSolarStudy)

	studyData := map[string]interface{}{
		"projectName":    "Maison Durand - toiture sud",
		"roofSurface":    45.5,
		"estimatedPower": 6.0,
		"clientId":       "client-1",
	}
	jsonData, _ := json.Marshal(studyData)

	req, _ := http.NewRequest(http.MethodPost, "/solar-studies", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
}

func TestCreateSolarStudy_NegativeValues(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/solar-studies", CreateSolarStudy)

	studyData := map[string]interface{}{
		"projectName":    "Maison Durand",
		"roofSurface":    -10.0,
		"estimatedPower": 0.0,
		"clientId":       "client-1",
	}
	jsonData, _ := json.Marshal(studyData)

	req, _ := http.NewRequest(http.MethodPost, "/solar-studies", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	details := response["details"].(map[string]interface{})
	assert.Equal(t, "La surface doit être positive", details["roofSurface"])
	assert.Equal(t, "La puissance doit être positive", details["estimatedPower"])
}

func TestCreateSolarStudy_MissingClient(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/solar-studies", CreateSolarStudy)

	studyData := map[string]interface{}{
		"projectName": "Maison Durand",
	}
	jsonData, _ := json.Marshal(studyData)

	req, _ := http.NewRequest(http.MethodPost, "/solar-studies", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	details := response["details"].(map[string]interface{})
	assert.Equal(t, "Le client est obligatoire", details["clientId"])
}

func TestGetSolarStudyByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "solar_studies" WHERE id = \$1 ORDER BY "solar_studies"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/solar-studies/:id", GetSolarStudyByID)

	req, _ := http.NewRequest(http.MethodGet, "/solar-studies/inconnu", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
