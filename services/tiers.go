package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tier labels shared by trust-score and recovery-probability display
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Trust-score thresholds (0-100 scale). These differ from the recovery
// thresholds and must not be unified.
const (
	TrustHighThreshold   = 85.0
	TrustMediumThreshold = 70.0
)

// Recovery-probability thresholds (percentage scale)
const (
	RecoveryHighThreshold   = 70.0
	RecoveryMediumThreshold = 40.0
)

// TrustTier classifies a DCA trust score (0-100)
func TrustTier(score float64) string {
	if score >= TrustHighThreshold {
		return TierHigh
	}
	if score >= TrustMediumThreshold {
		return TierMedium
	}
	return TierLow
}

// RecoveryTier classifies a recovery probability given in [0, 1]
func RecoveryTier(probability float64) string {
	return RecoveryTierPercent(probability * 100)
}

// RecoveryTierPercent classifies a recovery probability already scaled
// to a 0-100 percentage
func RecoveryTierPercent(percentage float64) string {
	if percentage >= RecoveryHighThreshold {
		return TierHigh
	}
	if percentage >= RecoveryMediumThreshold {
		return TierMedium
	}
	return TierLow
}

// Fixed display locale for monetary amounts
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as a grouped en-US dollar string
// with two decimals, e.g. 1500 -> "$1,500.00"
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// FormatCurrencyWhole renders an amount without decimals, used for the
// dashboard headline figures, e.g. 1500.75 -> "$1,501"
func FormatCurrencyWhole(amount float64) string {
	return currencyPrinter.Sprintf("$%.0f", amount)
}
