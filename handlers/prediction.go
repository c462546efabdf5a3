package handlers

import (
	"net/http"

	"debt_flow_app_go/db"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// predictionRow is a prediction list entry with joined case fields and
// the recovery tier resolved server-side
type predictionRow struct {
	models.MLPrediction
	RecoveryTier        string `json:"recovery_tier"`
	CaseReference       string `json:"case_reference"`
	DebtorName          string `json:"debtor_name"`
	CaseAmountFormatted string `json:"case_amount_formatted"`
}

// GetPredictionsHandler returns the 50 most recent ML predictions with
// their case details
func GetPredictionsHandler(c echo.Context) error {
	var predictions []models.MLPrediction
	err := db.DB.
		Preload("Case").
		Order("created_at DESC").
		Limit(50).
		Find(&predictions).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch predictions")
	}

	rows := make([]predictionRow, 0, len(predictions))
	for i := range predictions {
		rows = append(rows, predictionRow{
			MLPrediction:        predictions[i],
			RecoveryTier:        services.RecoveryTier(predictions[i].RecoveryProbability),
			CaseReference:       predictions[i].Case.ReferenceNumber,
			DebtorName:          predictions[i].Case.DebtorName,
			CaseAmountFormatted: services.FormatCurrency(predictions[i].Case.Amount),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}
