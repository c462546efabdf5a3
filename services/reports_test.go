package services

import (
	"testing"
	"time"

	"debt_flow_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReportTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.DCA{}, &models.Case{}, &models.MLPrediction{})
	return db
}

func TestGenerateCaseReport(t *testing.T) {
	db := setupReportTestDB()

	dca := &models.DCA{Name: "Acme Recovery", TrustScore: 92, IsActive: true}
	assert.NoError(t, db.Create(dca).Error)

	email := "roe@example.com"
	assigned := &models.Case{
		ReferenceNumber: "REC-2026-000001",
		DebtorName:      "J. Roe",
		DebtorEmail:     &email,
		Amount:          28750.40,
		DaysOverdue:     95,
		Status:          models.CaseStatusAssigned,
		Priority:        models.CasePriorityHigh,
		AssignedDCAID:   &dca.ID,
	}
	assert.NoError(t, db.Create(assigned).Error)
	modelVersion := "recovery-gbm-1.4"
	assert.NoError(t, db.Create(&models.MLPrediction{
		CaseID:              assigned.ID,
		RecoveryProbability: 0.81,
		ModelVersion:        &modelVersion,
	}).Error)

	unassigned := &models.Case{
		ReferenceNumber: "REC-2026-000002",
		DebtorName:      "M. Okafor",
		Amount:          640.25,
		DaysOverdue:     32,
		Status:          models.CaseStatusNew,
		Priority:        models.CasePriorityMedium,
		CreatedAt:       time.Now().Add(time.Second),
	}
	assert.NoError(t, db.Create(unassigned).Error)

	buf, err := GenerateCaseReport(db)
	assert.NoError(t, err)
	assert.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cases")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "Reference", rows[0][0])
	assert.Equal(t, "Recovery Probability", rows[0][9])

	// Newest case first
	assert.Equal(t, "REC-2026-000002", rows[1][0])
	assert.Equal(t, "M. Okafor", rows[1][1])
	assert.Equal(t, "$640.25", rows[1][4])

	assert.Equal(t, "REC-2026-000001", rows[2][0])
	assert.Equal(t, "roe@example.com", rows[2][2])
	assert.Equal(t, "$28,750.40", rows[2][4])
	assert.Equal(t, "Acme Recovery", rows[2][8])
	assert.Equal(t, "81.0% (high)", rows[2][9])
}
