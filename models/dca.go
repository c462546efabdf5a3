package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DCA represents a debt collection agency on the roster
type DCA struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"not null" json:"name"`

	// Performance metrics (0-100 percentages)
	TrustScore          float64  `gorm:"not null;default:50" json:"trust_score"`
	SLAComplianceRate   *float64 `json:"sla_compliance_rate,omitempty"`
	RecoverySuccessRate *float64 `json:"recovery_success_rate,omitempty"`

	// Counters maintained by external scoring processes
	EscalationCount   *int `json:"escalation_count,omitempty"`
	TotalCasesHandled *int `json:"total_cases_handled,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	AssignedCases []Case   `gorm:"foreignKey:AssignedDCAID" json:"assigned_cases,omitempty"`
	Actions       []Action `gorm:"foreignKey:DCAID" json:"actions,omitempty"`
}

// BeforeCreate hook to generate UUID
func (d *DCA) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for DCA model
func (DCA) TableName() string {
	return "dcas"
}
