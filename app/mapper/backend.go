package mapper

import (
	"math"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

func UserFromDTO(item *dto.UserResponse) *entity.User {
	if item == nil {
		return nil
	}
	plan, ok := entity.ParsePlanTier(item.Plan)
	if !ok {
		plan = entity.PlanFree
	}
	return &entity.User{
		ID:                     item.ID,
		Username:               item.Username,
		Email:                  item.Email,
		Avatar:                 item.Avatar,
		Plan:                   plan,
		TotalPoints:            item.TotalPoints,
		Level:                  item.Level,
		HasCompletedOnboarding: item.HasCompletedOnboarding,
		CreatedAt:              parseTime(item.CreatedAt),
	}
}

func SubscriptionFromDTO(item *dto.SubscriptionResponse) *entity.Subscription {
	if item == nil {
		return nil
	}
	plan, ok := entity.ParsePlanTier(item.Plan)
	if !ok {
		plan = entity.PlanFree
	}
	return &entity.Subscription{
		ID:                 item.ID,
		UserID:             item.UserID,
		Plan:               plan,
		Status:             entity.SubscriptionStatus(strings.ToLower(item.Status)),
		CurrentPeriodStart: parseOptionalTime(item.CurrentPeriodStart),
		CurrentPeriodEnd:   parseOptionalTime(item.CurrentPeriodEnd),
		CancelAtPeriodEnd:  item.CancelAtPeriodEnd,
		CreatedAt:          parseTime(item.CreatedAt),
	}
}

func SubscriptionsFromDTO(items []dto.SubscriptionResponse) []*entity.Subscription {
	result := make([]*entity.Subscription, 0, len(items))
	for i := range items {
		result = append(result, SubscriptionFromDTO(&items[i]))
	}
	return result
}

func PaymentFromDTO(item *dto.PaymentResponse) *entity.Payment {
	if item == nil {
		return nil
	}
	var paidAt *time.Time
	if item.PaidAt != nil {
		paidAt = parseOptionalTime(*item.PaidAt)
	}
	return &entity.Payment{
		ID:             item.ID,
		UserID:         item.UserID,
		SubscriptionID: item.SubscriptionID,
		AmountCents:    toCents(item.Amount),
		Status:         entity.PaymentStatus(strings.ToLower(item.Status)),
		PaymentMethod:  entity.PaymentMethod(strings.ToLower(item.PaymentMethod)),
		PaymentURL:     item.PaymentURL,
		PixCode:        item.PixCode,
		PixQrCode:      item.PixQrCode,
		PaidAt:         paidAt,
		ExpiresAt:      parseTime(item.ExpiresAt),
		CreatedAt:      parseTime(item.CreatedAt),
	}
}

func PaymentsFromDTO(items []dto.PaymentResponse) []*entity.Payment {
	result := make([]*entity.Payment, 0, len(items))
	for i := range items {
		result = append(result, PaymentFromDTO(&items[i]))
	}
	return result
}

func GoalFromDTO(item *dto.GoalResponse) *entity.Goal {
	if item == nil {
		return nil
	}
	return &entity.Goal{
		ID:                 item.ID,
		Title:              item.Title,
		Category:           item.Category,
		Status:             item.Status,
		TargetAmountCents:  toCents(item.TargetAmount),
		CurrentAmountCents: toCents(item.CurrentAmount),
		Deadline:           parseOptionalTime(item.Deadline),
		CreatedAt:          parseTime(item.CreatedAt),
	}
}

func GoalsFromDTO(items []dto.GoalResponse) []*entity.Goal {
	result := make([]*entity.Goal, 0, len(items))
	for i := range items {
		result = append(result, GoalFromDTO(&items[i]))
	}
	return result
}

func ChallengeFromDTO(item *dto.ChallengeResponse) *entity.Challenge {
	if item == nil {
		return nil
	}
	return &entity.Challenge{
		ID:                item.ID,
		CreatorID:         item.Creator.ID,
		Title:             item.Title,
		Category:          item.Category,
		Status:            item.Status,
		TargetAmountCents: toCents(item.TargetAmount),
		MaxParticipants:   item.MaxParticipants,
		CreatedAt:         parseTime(item.CreatedAt),
	}
}

func ChallengesFromDTO(items []dto.ChallengeResponse) []*entity.Challenge {
	result := make([]*entity.Challenge, 0, len(items))
	for i := range items {
		result = append(result, ChallengeFromDTO(&items[i]))
	}
	return result
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func parseTime(value string) time.Time {
	if t := parseOptionalTime(value); t != nil {
		return *t
	}
	return time.Time{}
}

// parseOptionalTime accepts RFC3339 timestamps and plain dates.
func parseOptionalTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
