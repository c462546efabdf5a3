package handlers

import (
	"net/http"

	"debt_flow_app_go/db"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// caseRow is a case list entry with display fields resolved server-side
type caseRow struct {
	models.Case
	AmountFormatted     string   `json:"amount_formatted"`
	RecoveryProbability *float64 `json:"recovery_probability,omitempty"`
	RecoveryTier        *string  `json:"recovery_tier,omitempty"`
}

// GetCasesHandler returns the case book, newest first, with assigned
// DCA and latest prediction attached
func GetCasesHandler(c echo.Context) error {
	query := db.DB.Preload("AssignedDCA").Preload("Predictions")

	if status := c.QueryParam("status"); status != "" {
		if !models.IsValidCaseStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown case status")
		}
		query = query.Where("status = ?", status)
	}

	var cases []models.Case
	if err := query.Order("created_at DESC").Find(&cases).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cases")
	}

	rows := make([]caseRow, 0, len(cases))
	for i := range cases {
		row := caseRow{
			Case:            cases[i],
			AmountFormatted: services.FormatCurrency(cases[i].Amount),
		}
		if p := cases[i].LatestPrediction(); p != nil {
			prob := p.RecoveryProbability
			tier := services.RecoveryTier(prob)
			row.RecoveryProbability = &prob
			row.RecoveryTier = &tier
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// GetOpenCasesHandler returns non-closed cases for the action form picker
func GetOpenCasesHandler(c echo.Context) error {
	var cases []models.Case
	err := db.DB.
		Select("id", "reference_number", "debtor_name", "assigned_dca_id").
		Where("status <> ?", models.CaseStatusClosed).
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cases")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": cases,
	})
}

type closeCaseRequest struct {
	Recovered       bool     `json:"recovered"`
	AmountRecovered *float64 `json:"amount_recovered"`
}

// CloseCaseHandler records a case's terminal outcome. Recovered cases
// end as resolved, unrecovered ones as closed.
func CloseCaseHandler(c echo.Context) error {
	var req closeCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := services.CloseCase(db.DB, services.CloseCaseInput{
		CaseID:          c.Param("id"),
		Recovered:       req.Recovered,
		AmountRecovered: req.AmountRecovered,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": outcome,
	})
}

type createCaseRequest struct {
	DebtorName    string  `json:"debtor_name"`
	DebtorEmail   string  `json:"debtor_email"`
	DebtorPhone   string  `json:"debtor_phone"`
	Amount        float64 `json:"amount"`
	DaysOverdue   int     `json:"days_overdue"`
	AssignedDCAID string  `json:"assigned_dca_id"`
	Priority      string  `json:"priority"`
}

// CreateCaseHandler opens a new case. Status derivation and reference
// numbering happen in the service layer.
func CreateCaseHandler(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	created, err := services.CreateCase(db.DB, services.CreateCaseInput{
		DebtorName:    req.DebtorName,
		DebtorEmail:   req.DebtorEmail,
		DebtorPhone:   req.DebtorPhone,
		Amount:        req.Amount,
		DaysOverdue:   req.DaysOverdue,
		AssignedDCAID: req.AssignedDCAID,
		Priority:      req.Priority,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data": created,
	})
}
