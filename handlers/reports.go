package handlers

import (
	"fmt"
	"net/http"
	"time"

	"debt_flow_app_go/db"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// ExportCasesHandler streams the case book as an Excel workbook
func ExportCasesHandler(c echo.Context) error {
	buf, err := services.GenerateCaseReport(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate report")
	}

	filename := fmt.Sprintf("cases_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
