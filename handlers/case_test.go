package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestGetCasesHandler(t *testing.T) {
	database := setupTestDB(t)

	dca := &models.DCA{Name: "Acme Recovery", TrustScore: 92, IsActive: true}
	database.Create(dca)

	created, err := services.CreateCase(database, services.CreateCaseInput{
		DebtorName:    "Harbor Logistics LLC",
		Amount:        28750.40,
		DaysOverdue:   95,
		AssignedDCAID: dca.ID,
	})
	assert.NoError(t, err)

	database.Create(&models.MLPrediction{CaseID: created.ID, RecoveryProbability: 0.81})

	t.Run("List", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []struct {
				ReferenceNumber     string   `json:"reference_number"`
				Status              string   `json:"status"`
				AmountFormatted     string   `json:"amount_formatted"`
				RecoveryProbability *float64 `json:"recovery_probability"`
				RecoveryTier        *string  `json:"recovery_tier"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, created.ReferenceNumber, body.Data[0].ReferenceNumber)
		assert.Equal(t, models.CaseStatusAssigned, body.Data[0].Status)
		assert.Equal(t, "$28,750.40", body.Data[0].AmountFormatted)
		assert.NotNil(t, body.Data[0].RecoveryTier)
		assert.Equal(t, services.TierHigh, *body.Data[0].RecoveryTier)
	})

	t.Run("Status Filter", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?status=new", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 0)
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/cases?status=bogus", nil)

		err := GetCasesHandler(c)
		assert.Error(t, err)
	})
}

func TestCreateCaseHandler(t *testing.T) {
	database := setupTestDB(t)

	dca := &models.DCA{Name: "Acme Recovery", TrustScore: 92, IsActive: true}
	database.Create(dca)

	t.Run("Without DCA", func(t *testing.T) {
		payload := `{"debtor_name":"J. Roe","amount":1500,"days_overdue":10}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(payload))

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data models.Case `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, models.CaseStatusNew, body.Data.Status)
		assert.Equal(t, models.CasePriorityMedium, body.Data.Priority)
	})

	t.Run("With DCA", func(t *testing.T) {
		payload := `{"debtor_name":"M. Okafor","amount":640.25,"days_overdue":32,"assigned_dca_id":"` + dca.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(payload))

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data models.Case `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, models.CaseStatusAssigned, body.Data.Status)
	})

	t.Run("Validation Error Surfaces", func(t *testing.T) {
		payload := `{"amount":100}`
		_, c, _ := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(payload))

		err := CreateCaseHandler(c)
		assert.Error(t, err)
	})
}

func TestCloseCaseHandler(t *testing.T) {
	database := setupTestDB(t)

	created, err := services.CreateCase(database, services.CreateCaseInput{DebtorName: "J. Roe", Amount: 1500})
	assert.NoError(t, err)

	payload := `{"recovered":true,"amount_recovered":1200}`
	_, c, rec := setupEcho(http.MethodPost, "/api/cases/:id/close", strings.NewReader(payload))
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	err = CloseCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.CaseOutcome `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Recovered)
	assert.Equal(t, 1200.0, *body.Data.AmountRecovered)

	var reloaded models.Case
	assert.NoError(t, database.First(&reloaded, "id = ?", created.ID).Error)
	assert.Equal(t, models.CaseStatusResolved, reloaded.Status)

	// A second close is rejected
	_, c2, _ := setupEcho(http.MethodPost, "/api/cases/:id/close", strings.NewReader(`{}`))
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID)
	assert.Error(t, CloseCaseHandler(c2))
}

func TestGetOpenCasesHandler(t *testing.T) {
	database := setupTestDB(t)

	database.Create(&models.Case{ReferenceNumber: "REC-2026-000010", DebtorName: "Open", Status: models.CaseStatusNew})
	database.Create(&models.Case{ReferenceNumber: "REC-2026-000011", DebtorName: "Closed", Status: models.CaseStatusClosed})

	_, c, rec := setupEcho(http.MethodGet, "/api/cases/open", nil)

	err := GetOpenCasesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.Case `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "REC-2026-000010", body.Data[0].ReferenceNumber)
}
