package handlers

import (
	"net/http"
	"time"

	"debt_flow_app_go/db"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"github.com/labstack/echo/v4"
)

// actionRow is an action list entry with joined display fields and the
// derived SLA status
type actionRow struct {
	models.Action
	ActionTypeLabel string `json:"action_type_label"`
	SLAStatus       string `json:"sla_status"`
	CaseReference   string `json:"case_reference"`
	DebtorName      string `json:"debtor_name"`
	DCAName         string `json:"dca_name"`
}

// GetActionsHandler returns the 50 most recent actions with case and
// DCA details and each action's resolved SLA state
func GetActionsHandler(c echo.Context) error {
	var actions []models.Action
	err := db.DB.
		Preload("Case").
		Preload("DCA").
		Order("created_at DESC").
		Limit(50).
		Find(&actions).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch actions")
	}

	now := time.Now()
	rows := make([]actionRow, 0, len(actions))
	for i := range actions {
		rows = append(rows, actionRow{
			Action:          actions[i],
			ActionTypeLabel: actions[i].TypeLabel(),
			SLAStatus:       services.ResolveSLAStatus(&actions[i], now),
			CaseReference:   actions[i].Case.ReferenceNumber,
			DebtorName:      actions[i].Case.DebtorName,
			DCAName:         actions[i].DCA.Name,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

type createActionRequest struct {
	CaseID     string `json:"case_id"`
	DCAID      string `json:"dca_id"`
	ActionType string `json:"action_type"`
	Notes      string `json:"notes"`
}

// CreateActionHandler logs a DCA action against a case. The service
// assigns the 24h SLA deadline and moves the case to in_progress in
// the same transaction.
func CreateActionHandler(c echo.Context) error {
	var req createActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	action, err := services.CreateAction(db.DB, services.CreateActionInput{
		CaseID:     req.CaseID,
		DCAID:      req.DCAID,
		ActionType: req.ActionType,
		Notes:      req.Notes,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data": action,
	})
}

// CompleteActionHandler marks an action as completed
func CompleteActionHandler(c echo.Context) error {
	action, err := services.CompleteAction(db.DB, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": actionRow{
			Action:          *action,
			ActionTypeLabel: action.TypeLabel(),
			SLAStatus:       services.ResolveSLAStatus(action, time.Now()),
		},
	})
}
