package handlers

import (
	"net/http"

	"debt_flow_app_go/db"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// dcaRow is a roster entry with the trust tier resolved server-side
type dcaRow struct {
	models.DCA
	TrustTier string `json:"trust_tier"`
}

// GetDCAsHandler returns the agency roster ordered by trust score.
// Pass active=true to restrict to active agencies (the form pickers do).
func GetDCAsHandler(c echo.Context) error {
	query := db.DB.Order("trust_score DESC")
	if c.QueryParam("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var dcas []models.DCA
	if err := query.Find(&dcas).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch DCAs")
	}

	rows := make([]dcaRow, 0, len(dcas))
	for i := range dcas {
		rows = append(rows, dcaRow{
			DCA:       dcas[i],
			TrustTier: services.TrustTier(dcas[i].TrustScore),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

type createDCARequest struct {
	Name                string   `json:"name"`
	TrustScore          float64  `json:"trust_score"`
	SLAComplianceRate   *float64 `json:"sla_compliance_rate"`
	RecoverySuccessRate *float64 `json:"recovery_success_rate"`
	IsActive            *bool    `json:"is_active"`
}

// CreateDCAHandler adds an agency to the roster
func CreateDCAHandler(c echo.Context) error {
	var req createDCARequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	dca := &models.DCA{
		Name:                req.Name,
		TrustScore:          req.TrustScore,
		SLAComplianceRate:   req.SLAComplianceRate,
		RecoverySuccessRate: req.RecoverySuccessRate,
		IsActive:            true,
	}
	if req.IsActive != nil {
		dca.IsActive = *req.IsActive
	}

	if err := services.CreateDCA(db.DB, dca); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data": dcaRow{DCA: *dca, TrustTier: services.TrustTier(dca.TrustScore)},
	})
}
