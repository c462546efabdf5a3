package services

import (
	"time"

	"debt_flow_app_go/models"
)

// SLA status constants, the derived lifecycle state of an action
const (
	SLAStatusBreached  = "breached"
	SLAStatusCompleted = "completed"
	SLAStatusOverdue   = "overdue"
	SLAStatusPending   = "pending"
)

// SLADeadlineOffset is the fixed window a DCA has to complete an action
const SLADeadlineOffset = 24 * time.Hour

// ResolveSLAStatus derives the SLA state of an action at the given
// instant. The precedence order is fixed: a recorded breach wins over
// everything else, including a completion timestamp. Completion wins
// over the deadline check. An unset deadline can never be overdue.
func ResolveSLAStatus(action *models.Action, now time.Time) string {
	if action.SLABreached != nil && *action.SLABreached {
		return SLAStatusBreached
	}
	if action.CompletedAt != nil {
		return SLAStatusCompleted
	}
	if action.SLADeadline != nil && action.SLADeadline.Before(now) {
		return SLAStatusOverdue
	}
	return SLAStatusPending
}

// SLADeadlineFrom returns the deadline assigned to an action created at
// the given instant
func SLADeadlineFrom(createdAt time.Time) time.Time {
	return createdAt.Add(SLADeadlineOffset)
}
