package controller

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/factory"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/service"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/session"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

const (
	completeRedirectMs = 3000
	successRedirectMs  = 2000
	maxDebugValueLen   = 200 // runes
)

type BillingController struct {
	entitlementService  *service.EntitlementService
	subscriptionService *service.SubscriptionService
	paymentService      *service.PaymentService
	sanitizer           *bluemonday.Policy
	logger              logrus.FieldLogger
}

func NewBillingController(
	entitlementService *service.EntitlementService,
	subscriptionService *service.SubscriptionService,
	paymentService *service.PaymentService,
) *BillingController {
	return &BillingController{
		entitlementService:  entitlementService,
		subscriptionService: subscriptionService,
		paymentService:      paymentService,
		sanitizer:           bluemonday.StrictPolicy(),
		logger:              factory.NewModuleLogger("billing-controller"),
	}
}

func (c *BillingController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *BillingController) ListPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.ListPlansResponse{
		Plans: mapper.PlansToProto(entitlement.Catalog()),
	})
}

func (c *BillingController) Evaluate(ctx echo.Context) error {
	req, err := types.NewEvaluateRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	plan, _ := entity.ParsePlanTier(req.GetPlan())
	return ctx.JSON(http.StatusOK, &types.EvaluateResponse{
		Plan:       string(plan),
		Goals:      mapper.DecisionToProto(entitlement.CanCreateGoal(plan, int(req.GetActiveGoals()))),
		Challenges: mapper.DecisionToProto(entitlement.CanCreateChallenge(plan, int(req.GetCreatedChallenges()))),
		Suggestion: mapper.SuggestionToProto(entitlement.GetUpgradeSuggestion(plan)),
	})
}

func (c *BillingController) Entitlements(ctx echo.Context) error {
	summary, err := c.entitlementService.Summary(ctx.Request().Context())
	if err != nil {
		return c.serviceError(ctx, err, "Load entitlements failed")
	}

	return ctx.JSON(http.StatusOK, &types.EntitlementsResponse{
		User:       mapper.UserToProto(summary.User),
		Plan:       string(summary.Plan),
		Usage:      mapper.UsageToProto(summary.Usage),
		Goals:      mapper.DecisionToProto(summary.Goals),
		Challenges: mapper.DecisionToProto(summary.Challenges),
		Suggestion: mapper.SuggestionToProto(summary.Suggestion),
	})
}

func (c *BillingController) CreateGoal(ctx echo.Context) error {
	req, err := types.NewCreateGoalRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	goal, err := c.entitlementService.CreateGoal(ctx.Request().Context(), req)
	if err != nil {
		return c.serviceError(ctx, err, "Create goal failed")
	}

	return ctx.JSON(http.StatusCreated, &types.GoalResponse{Goal: mapper.GoalToProto(goal)})
}

func (c *BillingController) CreateChallenge(ctx echo.Context) error {
	req, err := types.NewCreateChallengeRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	challenge, err := c.entitlementService.CreateChallenge(ctx.Request().Context(), req)
	if err != nil {
		return c.serviceError(ctx, err, "Create challenge failed")
	}

	return ctx.JSON(http.StatusCreated, &types.ChallengeResponse{Challenge: mapper.ChallengeToProto(challenge)})
}

// SelectPlan creates the upgrade payment and starts watching it server-side.
func (c *BillingController) SelectPlan(ctx echo.Context) error {
	req, err := types.NewSelectPlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	p, err := c.subscriptionService.SelectPlan(ctx.Request().Context(), req)
	if err != nil {
		return c.serviceError(ctx, err, "Select plan failed")
	}

	tracking := true
	if _, err := c.paymentService.Track(ctx.Request().Context(), p.ID, payment.Hooks{}); err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).WithField("payment_id", p.ID).Warn("Start payment tracking failed")
		tracking = false
	}

	return ctx.JSON(http.StatusCreated, &types.SelectPlanResponse{
		Payment:  mapper.PaymentToProto(p),
		Tracking: tracking,
	})
}

func (c *BillingController) GetTracking(ctx echo.Context) error {
	req, err := types.NewPaymentTrackingRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, live, err := c.paymentService.OwnTracking(ctx.Request().Context(), req.GetPaymentId())
	if err != nil {
		return c.serviceError(ctx, err, "Get payment tracking failed")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentTrackingResponse{
		Tracking: mapper.PaymentTrackingToProto(item, live),
	})
}

func (c *BillingController) StopTracking(ctx echo.Context) error {
	req, err := types.NewPaymentTrackingRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.paymentService.StopTracking(ctx.Request().Context(), req.GetPaymentId()); err != nil {
		return c.serviceError(ctx, err, "Stop payment tracking failed")
	}

	return ctx.JSON(http.StatusOK, &types.MessageResponse{Message: "Payment tracking stopped"})
}

func (c *BillingController) PaymentComplete(ctx echo.Context) error {
	return c.completion(ctx, completeRedirectMs)
}

func (c *BillingController) PaymentSuccess(ctx echo.Context) error {
	return c.completion(ctx, successRedirectMs)
}

func (c *BillingController) completion(ctx echo.Context, redirectMs int64) error {
	result, err := c.paymentService.Complete(ctx.Request().Context(), ctx.QueryParams())
	if err != nil {
		return c.serviceError(ctx, err, "Load payment failed")
	}

	resp := mapper.CompletionToProto(result.PaymentID, result.Payment, result.User, redirectMs)
	return ctx.JSON(http.StatusOK, resp)
}

func (c *BillingController) serviceError(ctx echo.Context, err error, operation string) error {
	var limitErr *service.LimitError
	if errors.As(err, &limitErr) {
		return ctx.JSON(http.StatusPaymentRequired, mapper.LimitPromptToProto(limitErr.Prompt, limitErr.FromBackend))
	}

	var lookupErr *service.LookupError
	if errors.As(err, &lookupErr) {
		statusCode := http.StatusNotFound
		if errors.Is(err, service.ErrPaymentIDMissing) {
			statusCode = http.StatusBadRequest
		}
		return ctx.JSON(statusCode, &types.LookupErrorResponse{
			Error:     lookupErr.Err.Error(),
			PaymentId: c.sanitize(lookupErr.PaymentID),
			Params:    c.sanitizeParams(lookupErr.Params),
		})
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPlan),
		errors.Is(err, service.ErrFreePlan),
		errors.Is(err, service.ErrPaymentIDMissing):
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyOnPlan):
		return c.writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTrackingNotFound):
		return c.writeError(ctx, http.StatusNotFound, "payment tracking not found")
	case errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, backend.ErrNoToken),
		errors.Is(err, backend.ErrUnauthorized):
		return c.writeError(ctx, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, backend.ErrTimeout):
		return c.writeError(ctx, http.StatusGatewayTimeout, "backend request timed out")
	default:
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(operation)
		return c.writeError(ctx, http.StatusBadGateway, "backend request failed")
	}
}

// sanitizeParams strips markup from the echoed query parameters.
func (c *BillingController) sanitizeParams(params map[string]string) map[string]string {
	result := make(map[string]string, len(params))
	for key, value := range params {
		clean := c.sanitize(key)
		if clean == "" {
			continue
		}
		result[clean] = c.sanitize(value)
	}
	return result
}

func (c *BillingController) sanitize(value string) string {
	clean := c.sanitizer.Sanitize(value)
	if utf8.RuneCountInString(clean) > maxDebugValueLen {
		clean = string([]rune(clean)[:maxDebugValueLen])
	}
	return clean
}

func (c *BillingController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
