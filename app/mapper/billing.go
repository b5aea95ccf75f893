package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

func PlanToProto(item entitlement.PlanDetails) *types.Plan {
	return &types.Plan{
		Plan:       string(item.Plan),
		Name:       item.Name,
		PriceCents: item.Limits.PriceCents,
		Currency:   item.Currency,
		Limits: &types.PlanLimits{
			ActiveGoals:       int32(item.Limits.ActiveGoals),
			CreatedChallenges: int32(item.Limits.CreatedChallenges),
		},
		Features: item.Features,
	}
}

func PlansToProto(items []entitlement.PlanDetails) []*types.Plan {
	result := make([]*types.Plan, 0, len(items))
	for _, item := range items {
		result = append(result, PlanToProto(item))
	}
	return result
}

func DecisionToProto(item entitlement.Decision) *types.Decision {
	return &types.Decision{
		Allowed: item.Allowed,
		Limit:   int32(item.Limit),
		Reason:  string(item.Reason),
		Message: item.Message,
	}
}

func SuggestionToProto(item entitlement.UpgradeSuggestion) *types.UpgradeSuggestion {
	result := &types.UpgradeSuggestion{Benefits: item.Benefits}
	if result.Benefits == nil {
		result.Benefits = []string{}
	}
	if item.SuggestedPlan != nil {
		result.SuggestedPlan = string(*item.SuggestedPlan)
	}
	return result
}

func LimitPromptToProto(item entitlement.Prompt, fromBackend bool) *types.LimitPrompt {
	return &types.LimitPrompt{
		Error:        item.Decision.Message,
		Kind:         string(item.Kind),
		Title:        item.Title,
		Badge:        item.Badge,
		CurrentPlan:  string(item.CurrentPlan),
		CurrentCount: int32(item.CurrentCount),
		Decision:     DecisionToProto(item.Decision),
		Suggestion:   SuggestionToProto(item.Suggestion),
		FromBackend:  fromBackend,
	}
}

func UsageToProto(item entitlement.Usage) *types.Usage {
	return &types.Usage{
		ActiveGoals:       int32(item.ActiveGoals),
		CreatedChallenges: int32(item.CreatedChallenges),
	}
}

func UserToProto(item *entity.User) *types.User {
	if item == nil {
		return nil
	}
	return &types.User{
		Id:          item.ID,
		Username:    item.Username,
		Email:       item.Email,
		Plan:        string(item.Plan),
		TotalPoints: item.TotalPoints,
		Level:       item.Level,
	}
}

func GoalToProto(item *entity.Goal) *types.Goal {
	if item == nil {
		return nil
	}
	return &types.Goal{
		Id:                 item.ID,
		Title:              item.Title,
		Category:           item.Category,
		Status:             item.Status,
		TargetAmountCents:  item.TargetAmountCents,
		CurrentAmountCents: item.CurrentAmountCents,
		Deadline:           formatTime(item.Deadline),
		CreatedAt:          formatRequiredTime(item.CreatedAt),
	}
}

func ChallengeToProto(item *entity.Challenge) *types.Challenge {
	if item == nil {
		return nil
	}
	return &types.Challenge{
		Id:                item.ID,
		CreatorId:         item.CreatorID,
		Title:             item.Title,
		Category:          item.Category,
		Status:            item.Status,
		TargetAmountCents: item.TargetAmountCents,
		MaxParticipants:   item.MaxParticipants,
		CreatedAt:         formatRequiredTime(item.CreatedAt),
	}
}

func PaymentToProto(item *entity.Payment) *types.Payment {
	if item == nil {
		return nil
	}
	return &types.Payment{
		Id:             item.ID,
		SubscriptionId: item.SubscriptionID,
		AmountCents:    item.AmountCents,
		Status:         string(item.Status),
		PaymentMethod:  string(item.PaymentMethod),
		PaymentUrl:     item.PaymentURL,
		PixCode:        derefString(item.PixCode),
		PixQrCode:      derefString(item.PixQrCode),
		PaidAt:         formatTime(item.PaidAt),
		ExpiresAt:      formatRequiredTime(item.ExpiresAt),
		CreatedAt:      formatRequiredTime(item.CreatedAt),
	}
}

func SubscriptionToProto(item *entity.Subscription) *types.Subscription {
	if item == nil {
		return nil
	}
	return &types.Subscription{
		Id:                 item.ID,
		Plan:               string(item.Plan),
		Status:             string(item.Status),
		CurrentPeriodStart: formatTime(item.CurrentPeriodStart),
		CurrentPeriodEnd:   formatTime(item.CurrentPeriodEnd),
		CancelAtPeriodEnd:  item.CancelAtPeriodEnd,
		CreatedAt:          formatRequiredTime(item.CreatedAt),
	}
}

func PaymentsToProto(items []*entity.Payment) []*types.Payment {
	result := make([]*types.Payment, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToProto(item))
	}
	return result
}

func PaymentTrackingToProto(item *entity.PaymentTracking, live bool) *types.PaymentTracking {
	if item == nil {
		return nil
	}
	return &types.PaymentTracking{
		PaymentId:  item.PaymentID,
		Outcome:    item.Outcome,
		LastStatus: string(item.LastStatus),
		Polls:      item.Polls,
		Live:       live,
		StartedAt:  formatRequiredTime(item.StartedAt),
		FinishedAt: formatTime(item.FinishedAt),
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatRequiredTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

// CompletionToProto builds the completion view of a loaded payment. user is
// the refreshed profile and is only set once the payment is paid.
func CompletionToProto(paymentID string, p *entity.Payment, user *entity.User, redirectMs int64) *types.CompletionResponse {
	resp := &types.CompletionResponse{
		PaymentId: paymentID,
		Payment:   PaymentToProto(p),
	}
	var status entity.PaymentStatus
	if p != nil {
		status = p.Status
	}
	switch {
	case status.IsPaid():
		resp.Title = "Payment confirmed!"
		resp.Message = "Your subscription is now active."
		resp.RedirectAfterMs = redirectMs
		if user != nil {
			resp.Plan = string(user.Plan)
			resp.Message = "Your " + user.Plan.DisplayName() + " plan is now active."
		}
	case status.IsFailure():
		resp.Title = "Payment not completed"
		resp.Message = "The payment was " + string(status) + ". You can try again from the plans page."
	default:
		resp.Title = "Processing payment"
		resp.Message = "We are waiting for the payment confirmation."
	}
	return resp
}
