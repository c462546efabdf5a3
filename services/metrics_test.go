package services

import (
	"context"
	"testing"

	"debt_flow_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMetricsTestDB() *gorm.DB {
	// Shared cache so the concurrent fetches see one database
	dbName := "mem_metrics_" + uuid.New().String()
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.DCA{}, &models.Case{}, &models.Action{})
	return db
}

func TestComputeDashboardMetrics(t *testing.T) {
	cases := []models.Case{
		{Amount: 1500, Status: models.CaseStatusNew},
		{Amount: 2500.50, Status: models.CaseStatusResolved},
		{Amount: 1000, Status: models.CaseStatusClosed},
		{Amount: 750.25, Status: models.CaseStatusEscalated},
	}
	dcas := []models.DCA{
		{TrustScore: 90, IsActive: true},
		{TrustScore: 60, IsActive: false},
	}
	actions := []models.Action{
		{SLABreached: boolPtr(true)},
		{SLABreached: boolPtr(false)},
		{SLABreached: nil},
	}

	m := ComputeDashboardMetrics(cases, dcas, actions)

	assert.Equal(t, 4, m.TotalCases)
	assert.Equal(t, 1, m.ResolvedCases, "closed and escalated cases are not resolved")
	assert.InDelta(t, 5750.75, m.TotalDebt, 0.001)
	assert.InDelta(t, 75.0, m.AvgTrustScore, 0.001)
	assert.Equal(t, 1, m.SLABreaches)
	// ActiveDCAs counts the whole fetched roster, inactive included
	assert.Equal(t, 2, m.ActiveDCAs)
}

func TestComputeDashboardMetricsEmpty(t *testing.T) {
	m := ComputeDashboardMetrics(nil, nil, nil)

	assert.Equal(t, 0, m.TotalCases)
	assert.Equal(t, 0, m.ResolvedCases)
	assert.Equal(t, 0.0, m.TotalDebt)
	assert.Equal(t, 0.0, m.AvgTrustScore, "empty roster must not divide by zero")
	assert.Equal(t, 0, m.SLABreaches)
	assert.Equal(t, 0, m.ActiveDCAs)
}

func TestFetchDashboardMetrics(t *testing.T) {
	db := setupMetricsTestDB()

	db.Create(&models.Case{ReferenceNumber: "REC-2026-000001", DebtorName: "A", Amount: 100, Status: models.CaseStatusResolved})
	db.Create(&models.Case{ReferenceNumber: "REC-2026-000002", DebtorName: "B", Amount: 200, Status: models.CaseStatusNew})
	db.Create(&models.DCA{Name: "Agency One", TrustScore: 80, IsActive: true})

	m, err := FetchDashboardMetrics(context.Background(), db)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.TotalCases)
	assert.Equal(t, 1, m.ResolvedCases)
	assert.InDelta(t, 300.0, m.TotalDebt, 0.001)
	assert.InDelta(t, 80.0, m.AvgTrustScore, 0.001)
	assert.Equal(t, 1, m.ActiveDCAs)
}
