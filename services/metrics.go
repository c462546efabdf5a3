package services

import (
	"context"

	"debt_flow_app_go/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardMetrics holds the headline numbers shown on the dashboard
type DashboardMetrics struct {
	TotalCases    int     `json:"total_cases"`
	ResolvedCases int     `json:"resolved_cases"`
	TotalDebt     float64 `json:"total_debt"`
	AvgTrustScore float64 `json:"avg_trust_score"`
	SLABreaches   int     `json:"sla_breaches"`
	ActiveDCAs    int     `json:"active_dcas"`
}

// ComputeDashboardMetrics reduces the three collections into headline
// metrics. Pure: no clock, no store access.
//
// ResolvedCases counts status "resolved" only; "closed" is a distinct
// terminal state and is excluded. ActiveDCAs counts every fetched
// agency regardless of the is_active flag.
func ComputeDashboardMetrics(cases []models.Case, dcas []models.DCA, actions []models.Action) DashboardMetrics {
	m := DashboardMetrics{
		TotalCases: len(cases),
		ActiveDCAs: len(dcas),
	}

	for _, c := range cases {
		if c.Status == models.CaseStatusResolved {
			m.ResolvedCases++
		}
		m.TotalDebt += c.Amount
	}

	if len(dcas) > 0 {
		var sum float64
		for _, d := range dcas {
			sum += d.TrustScore
		}
		m.AvgTrustScore = sum / float64(len(dcas))
	}

	for _, a := range actions {
		if a.SLABreached != nil && *a.SLABreached {
			m.SLABreaches++
		}
	}

	return m
}

// FetchDashboardMetrics loads the three collections concurrently and
// aggregates them once all three queries have returned
func FetchDashboardMetrics(ctx context.Context, database *gorm.DB) (DashboardMetrics, error) {
	var (
		cases   []models.Case
		dcas    []models.DCA
		actions []models.Action
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return database.WithContext(gctx).Select("id", "amount", "status").Find(&cases).Error
	})
	g.Go(func() error {
		return database.WithContext(gctx).Select("id", "trust_score").Find(&dcas).Error
	})
	g.Go(func() error {
		return database.WithContext(gctx).Select("id", "sla_breached").Find(&actions).Error
	})

	if err := g.Wait(); err != nil {
		return DashboardMetrics{}, err
	}

	return ComputeDashboardMetrics(cases, dcas, actions), nil
}
