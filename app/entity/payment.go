// Package entity holds the billing domain records.
//
// Refunded counts as a terminal failure: a payment tracker seeing it stops
// polling and reports the payment as failed, even though the money once moved.
package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCanceled   PaymentStatus = "canceled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusExpired    PaymentStatus = "expired"
)

type PaymentMethod string

const PaymentMethodPIX PaymentMethod = "pix"

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

// IsFailure reports terminal statuses that did not end in a payment.
// Refunded is included.
func (s PaymentStatus) IsFailure() bool {
	switch s {
	case PaymentStatusFailed, PaymentStatusExpired, PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsTerminal() bool {
	return s.IsPaid() || s.IsFailure()
}

type Payment struct {
	ID             string
	UserID         string
	SubscriptionID string
	AmountCents    int64
	Status         PaymentStatus
	PaymentMethod  PaymentMethod
	PaymentURL     string
	PixCode        *string
	PixQrCode      *string
	PaidAt         *time.Time
	ExpiresAt      time.Time
	CreatedAt      time.Time
}
