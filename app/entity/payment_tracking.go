package entity

import "time"

const (
	TrackingOutcomeWatching   = "watching"
	TrackingOutcomePaid       = "paid"
	TrackingOutcomeFailed     = "failed"
	TrackingOutcomeTimedOut   = "timed_out"
	TrackingOutcomeStopped    = "stopped"
	TrackingOutcomeUnresolved = "unresolved"
)

// PaymentTracking records one server-side watch over a payment.
type PaymentTracking struct {
	ID         string
	PaymentID  string
	UserID     *string
	LastStatus PaymentStatus
	Outcome    string
	Polls      int32
	StartedAt  time.Time
	FinishedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
