package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusNew        = "new"
	CaseStatusAssigned   = "assigned"
	CaseStatusInProgress = "in_progress"
	CaseStatusEscalated  = "escalated"
	CaseStatusResolved   = "resolved"
	CaseStatusClosed     = "closed"
)

// Case priority constants
const (
	CasePriorityLow    = "low"
	CasePriorityMedium = "medium"
	CasePriorityHigh   = "high"
)

// Case represents a debt-collection case against a debtor
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case identification
	ReferenceNumber string `gorm:"not null;uniqueIndex" json:"reference_number"`

	// Debtor details
	DebtorName  string  `gorm:"not null" json:"debtor_name"`
	DebtorEmail *string `json:"debtor_email,omitempty"`
	DebtorPhone *string `json:"debtor_phone,omitempty"`

	// Debt details
	Amount      float64 `gorm:"not null" json:"amount"`
	DaysOverdue int     `gorm:"not null;default:0" json:"days_overdue"`

	// Status and priority
	Status   string `gorm:"not null;default:new;index" json:"status"`
	Priority string `gorm:"not null;default:medium" json:"priority"`

	// Assignment
	AssignedDCAID *string `gorm:"type:uuid;index" json:"assigned_dca_id,omitempty"`
	AssignedDCA   *DCA    `gorm:"foreignKey:AssignedDCAID" json:"assigned_dca,omitempty"`

	// Relationships
	Actions     []Action       `gorm:"foreignKey:CaseID" json:"actions,omitempty"`
	Predictions []MLPrediction `gorm:"foreignKey:CaseID" json:"predictions,omitempty"`
	Outcome     *CaseOutcome   `gorm:"foreignKey:CaseID" json:"outcome,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsValidCaseStatus checks if a status value is one of the known case states
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusNew, CaseStatusAssigned, CaseStatusInProgress,
		CaseStatusEscalated, CaseStatusResolved, CaseStatusClosed:
		return true
	}
	return false
}

// IsValidCasePriority checks if a priority value is one of the known priorities
func IsValidCasePriority(priority string) bool {
	switch priority {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh:
		return true
	}
	return false
}

// LatestPrediction returns the most recent ML prediction loaded for the case,
// or nil when none have been preloaded
func (c *Case) LatestPrediction() *MLPrediction {
	if len(c.Predictions) == 0 {
		return nil
	}
	latest := &c.Predictions[0]
	for i := range c.Predictions {
		if c.Predictions[i].CreatedAt.After(latest.CreatedAt) {
			latest = &c.Predictions[i]
		}
	}
	return latest
}
