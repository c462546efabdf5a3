package services

import (
	"fmt"
	"strings"
	"time"

	"debt_flow_app_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CreateCaseInput contains the fields accepted when opening a case
type CreateCaseInput struct {
	DebtorName    string
	DebtorEmail   string
	DebtorPhone   string
	Amount        float64
	DaysOverdue   int
	AssignedDCAID string
	Priority      string
}

// CreateActionInput contains the fields accepted when logging a DCA action
type CreateActionInput struct {
	CaseID     string
	DCAID      string
	ActionType string
	Notes      string
}

// Notes may arrive from rich-text widgets; strip everything but safe markup.
var notesPolicy = bluemonday.UGCPolicy()

// CreateCase validates the input and inserts a new case. Status is
// derived at creation: "assigned" when a DCA was supplied, "new"
// otherwise. The reference number is allocated in the same transaction
// as the insert.
func CreateCase(database *gorm.DB, input CreateCaseInput) (*models.Case, error) {
	input.DebtorName = strings.TrimSpace(input.DebtorName)
	if input.DebtorName == "" {
		return nil, fmt.Errorf("debtor name is required")
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	if input.DaysOverdue < 0 {
		return nil, fmt.Errorf("days overdue must not be negative")
	}

	priority := input.Priority
	if priority == "" {
		priority = models.CasePriorityMedium
	}
	if !models.IsValidCasePriority(priority) {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	status := models.CaseStatusNew
	var assignedDCAID *string
	if input.AssignedDCAID != "" {
		var dca models.DCA
		if err := database.First(&dca, "id = ?", input.AssignedDCAID).Error; err != nil {
			return nil, fmt.Errorf("assigned DCA not found: %w", err)
		}
		assignedDCAID = &dca.ID
		status = models.CaseStatusAssigned
	}

	newCase := &models.Case{
		DebtorName:    input.DebtorName,
		Amount:        input.Amount,
		DaysOverdue:   input.DaysOverdue,
		Status:        status,
		Priority:      priority,
		AssignedDCAID: assignedDCAID,
	}
	if email := strings.TrimSpace(input.DebtorEmail); email != "" {
		newCase.DebtorEmail = &email
	}
	if phone := strings.TrimSpace(input.DebtorPhone); phone != "" {
		newCase.DebtorPhone = &phone
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		reference, err := NextReferenceNumber(tx, time.Now())
		if err != nil {
			return err
		}
		newCase.ReferenceNumber = reference

		if err := tx.Create(newCase).Error; err != nil {
			return fmt.Errorf("failed to create case: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newCase, nil
}

// CreateAction validates the input and logs a DCA action. The SLA
// deadline is fixed at 24 hours from the creation instant. The action
// insert and the parent case's move to "in_progress" run in a single
// transaction, so an observer can never see one without the other.
func CreateAction(database *gorm.DB, input CreateActionInput) (*models.Action, error) {
	if input.CaseID == "" {
		return nil, fmt.Errorf("case is required")
	}
	if input.DCAID == "" {
		return nil, fmt.Errorf("DCA is required")
	}
	if !models.IsValidActionType(input.ActionType) {
		return nil, fmt.Errorf("invalid action type: %s", input.ActionType)
	}

	now := time.Now()
	deadline := SLADeadlineFrom(now)

	action := &models.Action{
		CaseID:      input.CaseID,
		DCAID:       input.DCAID,
		ActionType:  input.ActionType,
		SLADeadline: &deadline,
	}
	if notes := strings.TrimSpace(notesPolicy.Sanitize(input.Notes)); notes != "" {
		action.Notes = &notes
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		var parent models.Case
		if err := tx.First(&parent, "id = ?", input.CaseID).Error; err != nil {
			return fmt.Errorf("case not found: %w", err)
		}
		var dca models.DCA
		if err := tx.First(&dca, "id = ?", input.DCAID).Error; err != nil {
			return fmt.Errorf("DCA not found: %w", err)
		}

		if err := tx.Create(action).Error; err != nil {
			return fmt.Errorf("failed to log action: %w", err)
		}

		if err := tx.Model(&parent).Update("status", models.CaseStatusInProgress).Error; err != nil {
			return fmt.Errorf("failed to update case status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// CloseCaseInput contains the fields accepted when closing a case
type CloseCaseInput struct {
	CaseID          string
	Recovered       bool
	AmountRecovered *float64
}

// CloseCase moves a case to its terminal status and records the outcome.
// Recovered cases end as "resolved", unrecovered ones as "closed". The
// status update and the outcome row are written in one transaction; a
// case that already reached a terminal status is rejected.
func CloseCase(database *gorm.DB, input CloseCaseInput) (*models.CaseOutcome, error) {
	if input.CaseID == "" {
		return nil, fmt.Errorf("case is required")
	}
	if input.AmountRecovered != nil && *input.AmountRecovered < 0 {
		return nil, fmt.Errorf("recovered amount must not be negative")
	}

	now := time.Now()
	outcome := &models.CaseOutcome{
		CaseID:          input.CaseID,
		Recovered:       input.Recovered,
		AmountRecovered: input.AmountRecovered,
		ClosedAt:        now,
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		var parent models.Case
		if err := tx.First(&parent, "id = ?", input.CaseID).Error; err != nil {
			return fmt.Errorf("case not found: %w", err)
		}
		if parent.Status == models.CaseStatusResolved || parent.Status == models.CaseStatusClosed {
			return fmt.Errorf("case %s is already %s", parent.ReferenceNumber, parent.Status)
		}

		days := int(now.Sub(parent.CreatedAt).Hours() / 24)
		outcome.RecoveryDays = &days

		if err := tx.Create(outcome).Error; err != nil {
			return fmt.Errorf("failed to record outcome: %w", err)
		}

		status := models.CaseStatusClosed
		if input.Recovered {
			status = models.CaseStatusResolved
		}
		if err := tx.Model(&parent).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update case status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// CompleteAction stamps an action's completion time. Already-completed
// actions are left untouched.
func CompleteAction(database *gorm.DB, actionID string) (*models.Action, error) {
	var action models.Action
	if err := database.First(&action, "id = ?", actionID).Error; err != nil {
		return nil, fmt.Errorf("action not found: %w", err)
	}

	if action.CompletedAt != nil {
		return &action, nil
	}

	now := time.Now()
	if err := database.Model(&action).Update("completed_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to complete action: %w", err)
	}
	action.CompletedAt = &now

	return &action, nil
}

// CreateDCA validates the input and adds an agency to the roster
func CreateDCA(database *gorm.DB, dca *models.DCA) error {
	dca.Name = strings.TrimSpace(dca.Name)
	if dca.Name == "" {
		return fmt.Errorf("agency name is required")
	}
	if dca.TrustScore < 0 || dca.TrustScore > 100 {
		return fmt.Errorf("trust score must be between 0 and 100")
	}

	if err := database.Create(dca).Error; err != nil {
		return fmt.Errorf("failed to create DCA: %w", err)
	}
	// The column default is true, so a zero-value IsActive is skipped on
	// insert and must be written explicitly
	if !dca.IsActive {
		if err := database.Model(dca).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate DCA: %w", err)
		}
	}
	return nil
}
