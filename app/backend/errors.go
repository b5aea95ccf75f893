package backend

import (
	"errors"
	"net/http"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
)

var (
	ErrTimeout      = errors.New("backend: request timeout")
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrNotFound     = errors.New("backend: not found")
	ErrNoToken      = errors.New("backend: no auth token")
)

// Structured codes the API returns when a plan limit blocks a mutation.
const (
	CodeGoalLimitExceeded      = "GOAL_LIMIT_EXCEEDED"
	CodeChallengeLimitExceeded = "CHALLENGE_LIMIT_EXCEEDED"
)

// APIError is returned for any failed request. StatusCode is 0 when the
// request never got a response and 408 on timeout.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.StatusCode == http.StatusRequestTimeout
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	default:
		return false
	}
}

// LimitViolation reports which limit the API rejected a creation for. Only
// the structured error code is consulted.
func LimitViolation(err error) (entitlement.Kind, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "", false
	}
	switch apiErr.Code {
	case CodeGoalLimitExceeded:
		return entitlement.KindGoals, true
	case CodeChallengeLimitExceeded:
		return entitlement.KindChallenges, true
	default:
		return "", false
	}
}
