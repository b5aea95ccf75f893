// Package entitlement decides, from a plan tier and usage counts, whether an
// action is allowed and which upgrade to offer when it is not. Everything here
// is a pure function: the backend remains the authority and these results are
// only an optimistic pre-check.
package entitlement

import (
	"fmt"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonLimitReached    Reason = "limit_reached"
	ReasonFeatureDisabled Reason = "feature_disabled"
)

type Kind string

const (
	KindGoals      Kind = "goals"
	KindChallenges Kind = "challenges"
)

type Decision struct {
	Allowed bool
	Limit   int
	Message string
	Reason  Reason
}

type UpgradeSuggestion struct {
	SuggestedPlan *entity.PlanTier
	Benefits      []string
}

// CanCreateGoal allows a new goal while the active count is below the tier limit.
func CanCreateGoal(tier entity.PlanTier, activeGoalsCount int) Decision {
	limit := entity.LimitsFor(tier).ActiveGoals
	if activeGoalsCount < limit {
		return Decision{Allowed: true, Limit: limit}
	}

	return Decision{
		Allowed: false,
		Limit:   limit,
		Reason:  ReasonLimitReached,
		Message: fmt.Sprintf(
			"You have reached the limit of %d active goals for your %s plan. Upgrade to create more goals.",
			limit, tierName(tier),
		),
	}
}

// CanCreateChallenge blocks free users unconditionally; other tiers are bounded
// by their created-challenges limit.
func CanCreateChallenge(tier entity.PlanTier, createdChallengesCount int) Decision {
	if !tier.Valid() || tier == entity.PlanFree {
		return Decision{
			Allowed: false,
			Limit:   0,
			Reason:  ReasonFeatureDisabled,
			Message: "Free plan users cannot create challenges. Upgrade to Standard or Plus to create challenges.",
		}
	}

	limit := entity.LimitsFor(tier).CreatedChallenges
	if createdChallengesCount < limit {
		return Decision{Allowed: true, Limit: limit}
	}

	return Decision{
		Allowed: false,
		Limit:   limit,
		Reason:  ReasonLimitReached,
		Message: fmt.Sprintf(
			"You have reached the limit of %d created challenges for your %s plan. Upgrade to create more challenges.",
			limit, tierName(tier),
		),
	}
}

// Check dispatches on the kind of resource being created.
func Check(kind Kind, tier entity.PlanTier, count int) Decision {
	if kind == KindChallenges {
		return CanCreateChallenge(tier, count)
	}
	return CanCreateGoal(tier, count)
}

func GetUpgradeSuggestion(tier entity.PlanTier) UpgradeSuggestion {
	switch tier {
	case entity.PlanPlus:
		return UpgradeSuggestion{Benefits: []string{}}
	case entity.PlanStandard:
		next := entity.PlanPlus
		return UpgradeSuggestion{
			SuggestedPlan: &next,
			Benefits: []string{
				fmt.Sprintf("Create up to %d challenges (double your current limit)", entity.LimitsFor(entity.PlanPlus).CreatedChallenges),
				fmt.Sprintf("%d active goals", entity.LimitsFor(entity.PlanPlus).ActiveGoals),
				"Early access to new features",
				"Priority support",
			},
		}
	default:
		next := entity.PlanStandard
		return UpgradeSuggestion{
			SuggestedPlan: &next,
			Benefits: []string{
				fmt.Sprintf("Create up to %d challenges", entity.LimitsFor(entity.PlanStandard).CreatedChallenges),
				fmt.Sprintf("%d active goals (double your current limit)", entity.LimitsFor(entity.PlanStandard).ActiveGoals),
				"Full streaks system",
				"Priority support",
			},
		}
	}
}

func tierName(tier entity.PlanTier) string {
	if !tier.Valid() {
		return string(entity.PlanFree)
	}
	return string(tier)
}
