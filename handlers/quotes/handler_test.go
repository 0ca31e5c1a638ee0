package quotes

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

func TestCreateQuote_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("client-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow("client-1", "Marie", "Durand"))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs("user-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow("user-1", "Paul", "Martin"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "quotes" (.+)`).
		WillReturnRows(mock.NewRows([]string{"status"}).AddRow("draft"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/quotes", CreateQuote)

	quoteData := map[string]interface{}{
		"clientId": "client-1",
		"userId":   "user-1",
		"amount":   15000.0,
	}
	jsonData, _ := json.Marshal(quoteData)

	req, _ := http.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Regexp(t, `^Q-\d{4}-\d{4}$`, data["reference"])
}

func TestCreateQuote_RetriesOnDuplicateReference(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("client-1", 1).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("client-1"))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs("user-1", 1).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("user-1"))

	// Première insertion rejetée par la contrainte d'unicité, la seconde passe
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "quotes" (.+)`).
		WillReturnError(errDuplicateKey{})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "quotes" (.+)`).
		WillReturnRows(mock.NewRows([]string{"status"}).AddRow("draft"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/quotes", CreateQuote)

	quoteData := map[string]interface{}{
		"clientId": "client-1",
		"userId":   "user-1",
		"amount":   8000.0,
	}
	jsonData, _ := json.Marshal(quoteData)

	req, _ := http.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type errDuplicateKey struct{}

func (errDuplicateKey) Error() string {
	return `ERROR: duplicate key value violates unique constraint "idx_quotes_reference" (SQLSTATE 23505)`
}

func TestCreateQuote_ValidationError(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/quotes", CreateQuote)

	quoteData := map[string]interface{}{
		"amount": -50.0,
	}
	jsonData, _ := json.Marshal(quoteData)

	req, _ := http.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	details := response["details"].(map[string]interface{})
	assert.Equal(t, "Le montant doit être positif", details["amount"])
	assert.Equal(t, "Le client est obligatoire", details["clientId"])
	assert.Equal(t, "L'utilisateur est obligatoire", details["userId"])
}

func TestCreateQuote_ClientNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/quotes", CreateQuote)

	quoteData := map[string]interface{}{
		"clientId": "inconnu",
		"userId":   "user-1",
		"amount":   5000.0,
	}
	jsonData, _ := json.Marshal(quoteData)

	req, _ := http.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Client not found", response["error"])
}

func TestSignQuote_SetsSignedAtWhateverTheStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Un devis rejeté reste signable, le comportement n'est pas gardé
	mock.ExpectQuery(`SELECT \* FROM "quotes" WHERE id = \$1 ORDER BY "quotes"."id" LIMIT \$2`).
		WithArgs("quote-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "reference", "amount", "status", "client_id", "user_id", "created_at"}).
			AddRow("quote-1", "Q-2025-0042", 15000.0, "rejected", "client-1", "user-1", time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "quotes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/quotes/:id/sign", SignQuote)

	req, _ := http.NewRequest(http.MethodPatch, "/quotes/quote-1/sign", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Quote signed successfully", response["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendQuote_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "quotes" WHERE id = \$1 ORDER BY "quotes"."id" LIMIT \$2`).
		WithArgs("quote-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "reference", "amount", "status", "client_id", "user_id"}).
			AddRow("quote-1", "Q-2025-0042", 15000.0, "draft", "client-1", "user-1"))

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE "clients"."id" = \$1`).
		WithArgs("client-1").
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow("client-1", "Marie", "Durand", ""))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "quotes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/quotes/:id/send", SendQuote)

	req, _ := http.NewRequest(http.MethodPatch, "/quotes/quote-1/send", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Quote sent successfully", response["message"])
}

func TestSendQuote_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "quotes" WHERE id = \$1 ORDER BY "quotes"."id" LIMIT \$2`).
		WithArgs("inconnu", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.PATCH("/quotes/:id/send", SendQuote)

	req, _ := http.NewRequest(http.MethodPatch, "/quotes/inconnu/send", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
