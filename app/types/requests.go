package types

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

func NewCreateGoalRequestFromContext(ctx echo.Context) (*CreateGoalRequest, error) {
	var body CreateGoalRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Category = strings.TrimSpace(body.Category)
	body.Deadline = strings.TrimSpace(body.Deadline)
	return &body, nil
}

func (r *CreateGoalRequest) Validate() error {
	if r.GetTitle() == "" {
		return errors.New("title is required")
	}
	if r.GetTargetAmount() <= 0 {
		return errors.New("targetAmount must be positive")
	}
	if r.GetCurrentAmount() < 0 {
		return errors.New("currentAmount cannot be negative")
	}
	return validateDeadline(r.GetDeadline())
}

func NewCreateChallengeRequestFromContext(ctx echo.Context) (*CreateChallengeRequest, error) {
	var body CreateChallengeRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Description = strings.TrimSpace(body.Description)
	body.Category = strings.TrimSpace(body.Category)
	body.Deadline = strings.TrimSpace(body.Deadline)
	return &body, nil
}

func (r *CreateChallengeRequest) Validate() error {
	if r.GetTitle() == "" {
		return errors.New("title is required")
	}
	if r.GetTargetAmount() <= 0 {
		return errors.New("targetAmount must be positive")
	}
	if r.GetMaxParticipants() < 0 || r.GetRewardPoints() < 0 {
		return errors.New("maxParticipants and rewardPoints cannot be negative")
	}
	return validateDeadline(r.GetDeadline())
}

func NewSelectPlanRequestFromContext(ctx echo.Context) (*SelectPlanRequest, error) {
	var body SelectPlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Plan = strings.ToLower(strings.TrimSpace(body.Plan))
	return &body, nil
}

func (r *SelectPlanRequest) Validate() error {
	if _, ok := entity.ParsePlanTier(r.GetPlan()); !ok {
		return errors.New("plan must be one of free, standard, plus")
	}
	return nil
}

// NewEvaluateRequestFromContext reads the plan and counts from the query
// string. Missing counts are zero.
func NewEvaluateRequestFromContext(ctx echo.Context) (*EvaluateRequest, error) {
	req := &EvaluateRequest{Plan: strings.ToLower(strings.TrimSpace(ctx.QueryParam("plan")))}

	var err error
	if req.ActiveGoals, err = parseCount(ctx.QueryParam("active_goals")); err != nil {
		return nil, err
	}
	if req.CreatedChallenges, err = parseCount(ctx.QueryParam("created_challenges")); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *EvaluateRequest) Validate() error {
	if _, ok := entity.ParsePlanTier(r.GetPlan()); !ok {
		return errors.New("plan must be one of free, standard, plus")
	}
	if r.GetActiveGoals() < 0 || r.GetCreatedChallenges() < 0 {
		return errors.New("counts cannot be negative")
	}
	return nil
}

func NewPaymentTrackingRequestFromContext(ctx echo.Context) (*PaymentTrackingRequest, error) {
	return &PaymentTrackingRequest{PaymentId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *PaymentTrackingRequest) Validate() error {
	if r.GetPaymentId() == "" {
		return errors.New("payment id is required")
	}
	return nil
}

func parseCount(raw string) (int32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}

func validateDeadline(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, value); err == nil {
		return nil
	}
	return errors.New("deadline must be RFC3339 or YYYY-MM-DD")
}
