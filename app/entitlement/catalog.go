package entitlement

import (
	"fmt"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type PlanDetails struct {
	Plan     entity.PlanTier
	Name     string
	Limits   entity.PlanLimits
	Currency string
	Features []string
}

var baseFeatures = []string{
	"Transaction tracking",
	"Spending analytics",
	"Join unlimited challenges",
	"Basic streaks tracking",
}

func PlanFeatures(tier entity.PlanTier) PlanDetails {
	if !tier.Valid() {
		tier = entity.PlanFree
	}
	limits := entity.LimitsFor(tier)

	features := make([]string, 0, len(baseFeatures)+4)
	features = append(features, baseFeatures...)
	features = append(features, fmt.Sprintf("%d active goals", limits.ActiveGoals))

	switch tier {
	case entity.PlanFree:
		features = append(features, "Cannot create challenges", "Community support")
	case entity.PlanStandard:
		features = append(features,
			fmt.Sprintf("Create up to %d challenges", limits.CreatedChallenges),
			"Full streaks system",
			"Priority support",
		)
	case entity.PlanPlus:
		features = append(features,
			fmt.Sprintf("Create up to %d challenges", limits.CreatedChallenges),
			"Full streaks system",
			"Priority support",
			"Early access to features",
		)
	}

	return PlanDetails{
		Plan:     tier,
		Name:     tier.DisplayName(),
		Limits:   limits,
		Currency: entity.PlanCurrency,
		Features: features,
	}
}

// Catalog returns the details of every tier in ascending order.
func Catalog() []PlanDetails {
	tiers := entity.PlanTiers()
	result := make([]PlanDetails, 0, len(tiers))
	for _, tier := range tiers {
		result = append(result, PlanFeatures(tier))
	}
	return result
}
