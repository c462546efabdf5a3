package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MLPrediction holds an externally computed recovery-probability score
// for a case. This application only reads the table; rows are written
// by the scoring pipeline (or the demo seeder).
type MLPrediction struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	// Probability in [0, 1]
	RecoveryProbability float64 `gorm:"not null" json:"recovery_probability"`

	RiskScore    *string `json:"risk_score,omitempty"`
	ModelVersion *string `json:"model_version,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *MLPrediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for MLPrediction model
func (MLPrediction) TableName() string {
	return "ml_predictions"
}
