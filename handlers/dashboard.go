package handlers

import (
	"net/http"

	"debt_flow_app_go/db"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// DashboardMetricsHandler returns the headline dashboard figures. The
// three backing queries run concurrently; aggregation waits for all of
// them.
func DashboardMetricsHandler(c echo.Context) error {
	metrics, err := services.FetchDashboardMetrics(c.Request().Context(), db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute dashboard metrics")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"metrics":              metrics,
		"total_debt_formatted": services.FormatCurrencyWhole(metrics.TotalDebt),
	})
}
