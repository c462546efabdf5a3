package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Reference number format: REC-YYYY-NNNNNN, sequence scoped per year
const referenceNumberPrefix = "REC"

// BuildReferenceNumber formats a case reference from a year and
// sequence number
func BuildReferenceNumber(year int, sequence int) string {
	return fmt.Sprintf("%s-%04d-%06d", referenceNumberPrefix, year, sequence)
}

// ParseReferenceSequence extracts the sequence component from a case
// reference number
func ParseReferenceSequence(referenceNumber string) (int, error) {
	parts := strings.Split(referenceNumber, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed reference number: %s", referenceNumber)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("malformed reference sequence in %s: %w", referenceNumber, err)
	}
	return seq, nil
}

// NextReferenceNumber allocates the next case reference for the year of
// the given instant. It scans the highest existing reference for that
// year; callers run it inside the same transaction as the case insert
// so the unique index backstops concurrent allocations.
func NextReferenceNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("%s-%04d-", referenceNumberPrefix, year)

	var refs []string
	err := tx.Table("cases").
		Where("reference_number LIKE ?", prefix+"%").
		Order("reference_number DESC").
		Limit(1).
		Pluck("reference_number", &refs).Error
	if err != nil {
		return "", fmt.Errorf("failed to look up last reference number: %w", err)
	}

	sequence := 1
	if len(refs) > 0 {
		lastSeq, err := ParseReferenceSequence(refs[0])
		if err != nil {
			return "", err
		}
		sequence = lastSeq + 1
	}

	return BuildReferenceNumber(year, sequence), nil
}
