package main

import (
	"log"

	"debt_flow_app_go/config"
	"debt_flow_app_go/db"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"
)

// Seeds a demo roster, a handful of cases, and prediction rows so the
// dashboard renders non-empty on a fresh database. Safe to re-run: it
// bails out if any DCA already exists.
func main() {
	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.DCA{},
		&models.Case{},
		&models.Action{},
		&models.MLPrediction{},
		&models.CaseOutcome{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var count int64
	db.DB.Model(&models.DCA{}).Count(&count)
	if count > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	floatPtr := func(f float64) *float64 { return &f }
	intPtr := func(i int) *int { return &i }
	strPtr := func(s string) *string { return &s }

	dcas := []models.DCA{
		{Name: "Acme Recovery", TrustScore: 92, SLAComplianceRate: floatPtr(96.5), RecoverySuccessRate: floatPtr(71.2), EscalationCount: intPtr(3), TotalCasesHandled: intPtr(412), IsActive: true},
		{Name: "Northfield Collections", TrustScore: 78, SLAComplianceRate: floatPtr(88.0), RecoverySuccessRate: floatPtr(54.9), EscalationCount: intPtr(11), TotalCasesHandled: intPtr(230), IsActive: true},
		{Name: "Meridian Debt Partners", TrustScore: 61, SLAComplianceRate: floatPtr(72.3), RecoverySuccessRate: floatPtr(38.4), EscalationCount: intPtr(27), TotalCasesHandled: intPtr(145), IsActive: false},
	}
	for i := range dcas {
		if err := services.CreateDCA(db.DB, &dcas[i]); err != nil {
			log.Fatalf("Failed to seed DCA %s: %v", dcas[i].Name, err)
		}
	}

	caseInputs := []services.CreateCaseInput{
		{DebtorName: "J. Roe", DebtorEmail: "j.roe@example.com", Amount: 1500, DaysOverdue: 10},
		{DebtorName: "Harbor Logistics LLC", Amount: 28750.40, DaysOverdue: 95, AssignedDCAID: dcas[0].ID, Priority: models.CasePriorityHigh},
		{DebtorName: "M. Okafor", DebtorPhone: "+1 555-0142", Amount: 640.25, DaysOverdue: 32, AssignedDCAID: dcas[1].ID},
	}

	probabilities := []float64{0.42, 0.81, 0.23}
	for i, input := range caseInputs {
		created, err := services.CreateCase(db.DB, input)
		if err != nil {
			log.Fatalf("Failed to seed case for %s: %v", input.DebtorName, err)
		}

		prediction := &models.MLPrediction{
			CaseID:              created.ID,
			RecoveryProbability: probabilities[i],
			RiskScore:           strPtr("medium"),
			ModelVersion:        strPtr("recovery-gbm-1.4"),
		}
		if err := db.DB.Create(prediction).Error; err != nil {
			log.Fatalf("Failed to seed prediction: %v", err)
		}
	}

	log.Printf("Seeded %d DCAs and %d cases with predictions", len(dcas), len(caseInputs))
}
