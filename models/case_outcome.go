package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseOutcome records the terminal result of a closed case. One row per
// case; written when a case reaches a terminal status.
type CaseOutcome struct {
	ID       string    `gorm:"type:uuid;primarykey" json:"id"`
	ClosedAt time.Time `gorm:"not null" json:"closed_at"`

	CaseID string `gorm:"type:uuid;not null;uniqueIndex" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	Recovered       bool     `gorm:"not null;default:false" json:"recovered"`
	AmountRecovered *float64 `json:"amount_recovered,omitempty"`
	RecoveryDays    *int     `json:"recovery_days,omitempty"`
}

// BeforeCreate hook to generate UUID and set ClosedAt
func (o *CaseOutcome) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.ClosedAt.IsZero() {
		o.ClosedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for CaseOutcome model
func (CaseOutcome) TableName() string {
	return "case_outcomes"
}
