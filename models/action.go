package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action type constants
const (
	ActionTypeCall        = "call"
	ActionTypeEmail       = "email"
	ActionTypeSMS         = "sms"
	ActionTypeLetter      = "letter"
	ActionTypePaymentPlan = "payment_plan"
	ActionTypeEscalation  = "escalation"
	ActionTypeLegalNotice = "legal_notice"
)

// ActionTypeLabels maps action type codes to display labels
var ActionTypeLabels = map[string]string{
	ActionTypeCall:        "Phone Call",
	ActionTypeEmail:       "Email",
	ActionTypeSMS:         "SMS",
	ActionTypeLetter:      "Letter",
	ActionTypePaymentPlan: "Payment Plan",
	ActionTypeEscalation:  "Escalation",
	ActionTypeLegalNotice: "Legal Notice",
}

// Action represents a collection step a DCA took on a case.
// SLABreached is owned by the SLA sweeper job; request handlers never set it.
type Action struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	DCAID string `gorm:"type:uuid;not null;index" json:"dca_id"`
	DCA   DCA    `gorm:"foreignKey:DCAID" json:"dca,omitempty"`

	ActionType string  `gorm:"not null" json:"action_type"`
	Notes      *string `gorm:"type:text" json:"notes,omitempty"`

	SLADeadline *time.Time `json:"sla_deadline,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SLABreached *bool      `gorm:"index" json:"sla_breached,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Action) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Action model
func (Action) TableName() string {
	return "dca_actions"
}

// IsValidActionType checks if an action type is one of the known codes
func IsValidActionType(actionType string) bool {
	_, ok := ActionTypeLabels[actionType]
	return ok
}

// TypeLabel returns the display label for the action's type
func (a *Action) TypeLabel() string {
	if label, ok := ActionTypeLabels[a.ActionType]; ok {
		return label
	}
	return a.ActionType
}
