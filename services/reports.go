package services

import (
	"bytes"
	"fmt"

	"debt_flow_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const caseReportSheet = "Cases"

var caseReportHeaders = []string{
	"Reference", "Debtor", "Email", "Phone", "Amount", "Days Overdue",
	"Status", "Priority", "Assigned DCA", "Recovery Probability", "Created",
}

// GenerateCaseReport writes the full case book to an Excel workbook,
// newest cases first
func GenerateCaseReport(database *gorm.DB) (*bytes.Buffer, error) {
	var cases []models.Case
	err := database.
		Preload("AssignedDCA").
		Preload("Predictions").
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", caseReportSheet)

	for i, header := range caseReportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(caseReportSheet, cell, header)
	}

	for row, c := range cases {
		values := []interface{}{
			c.ReferenceNumber,
			c.DebtorName,
			deref(c.DebtorEmail),
			deref(c.DebtorPhone),
			FormatCurrency(c.Amount),
			c.DaysOverdue,
			c.Status,
			c.Priority,
			"",
			"",
			c.CreatedAt.Format("2006-01-02 15:04"),
		}
		if c.AssignedDCA != nil {
			values[8] = c.AssignedDCA.Name
		}
		if p := c.LatestPrediction(); p != nil {
			values[9] = fmt.Sprintf("%.1f%% (%s)", p.RecoveryProbability*100, RecoveryTier(p.RecoveryProbability))
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(caseReportSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
