package service

import (
	"errors"
	"fmt"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrFreePlan           = errors.New("the free plan cannot be purchased")
	ErrAlreadyOnPlan      = errors.New("already subscribed to this plan")
	ErrPlanLimitReached   = errors.New("plan limit reached")
	ErrPaymentIDMissing   = errors.New("payment id missing")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrTrackingNotFound   = errors.New("payment tracking not found")
	ErrTrackingNotEnabled = errors.New("payment tracking storage is not configured")
)

// LimitError carries the upgrade prompt for a creation the user's plan does
// not allow. FromBackend is set when the API rejected the request after the
// local check let it through.
type LimitError struct {
	Prompt      entitlement.Prompt
	FromBackend bool
}

func (e *LimitError) Error() string {
	return e.Prompt.Decision.Message
}

func (e *LimitError) Unwrap() error {
	return ErrPlanLimitReached
}

// LookupError is returned when a completion page cannot resolve its payment.
// Params holds the query parameters that were received, for the debug panel.
type LookupError struct {
	PaymentID string
	Params    map[string]string
	Err       error
}

func (e *LookupError) Error() string {
	if e.PaymentID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.PaymentID)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
