package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestGetPredictionsHandler(t *testing.T) {
	database := setupTestDB(t)

	parent, err := services.CreateCase(database, services.CreateCaseInput{DebtorName: "J. Roe", Amount: 1500})
	assert.NoError(t, err)

	version := "recovery-gbm-1.4"
	database.Create(&models.MLPrediction{
		CaseID:              parent.ID,
		RecoveryProbability: 0.81,
		ModelVersion:        &version,
	})
	database.Create(&models.MLPrediction{
		CaseID:              parent.ID,
		RecoveryProbability: 0.23,
	})

	_, c, rec := setupEcho(http.MethodGet, "/api/predictions", nil)

	err = GetPredictionsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			RecoveryProbability float64 `json:"recovery_probability"`
			RecoveryTier        string  `json:"recovery_tier"`
			CaseReference       string  `json:"case_reference"`
			CaseAmountFormatted string  `json:"case_amount_formatted"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	tiers := map[float64]string{}
	for _, row := range body.Data {
		tiers[row.RecoveryProbability] = row.RecoveryTier
		assert.Equal(t, parent.ReferenceNumber, row.CaseReference)
		assert.Equal(t, "$1,500.00", row.CaseAmountFormatted)
	}
	assert.Equal(t, services.TierHigh, tiers[0.81])
	assert.Equal(t, services.TierLow, tiers[0.23])
}
