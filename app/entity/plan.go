package entity

import "strings"

type PlanTier string

const (
	PlanFree     PlanTier = "free"
	PlanStandard PlanTier = "standard"
	PlanPlus     PlanTier = "plus"
)

const PlanCurrency = "BRL"

type PlanLimits struct {
	ActiveGoals       int
	CreatedChallenges int
	PriceCents        int64
}

var planLimits = map[PlanTier]PlanLimits{
	PlanFree:     {ActiveGoals: 3, CreatedChallenges: 0, PriceCents: 0},
	PlanStandard: {ActiveGoals: 6, CreatedChallenges: 3, PriceCents: 500},
	PlanPlus:     {ActiveGoals: 10, CreatedChallenges: 6, PriceCents: 2000},
}

// PlanTiers lists every tier from the cheapest to the most expensive.
func PlanTiers() []PlanTier {
	return []PlanTier{PlanFree, PlanStandard, PlanPlus}
}

// LimitsFor returns the fixed limits of a tier. Unknown tiers get the free limits.
func LimitsFor(tier PlanTier) PlanLimits {
	if limits, ok := planLimits[tier]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// ParsePlanTier accepts both the client spelling (standard) and the backend one (STANDARD).
func ParsePlanTier(value string) (PlanTier, bool) {
	tier := PlanTier(strings.ToLower(strings.TrimSpace(value)))
	switch tier {
	case PlanFree, PlanStandard, PlanPlus:
		return tier, true
	default:
		return "", false
	}
}

func (t PlanTier) Valid() bool {
	_, ok := planLimits[t]
	return ok
}

func (t PlanTier) DisplayName() string {
	switch t {
	case PlanStandard:
		return "Standard"
	case PlanPlus:
		return "Plus"
	default:
		return "Free"
	}
}

// BackendCode is the plan name the subscriptions endpoint expects. Free has none.
func (t PlanTier) BackendCode() string {
	switch t {
	case PlanStandard:
		return "STANDARD"
	case PlanPlus:
		return "PLUS"
	default:
		return ""
	}
}

func (t PlanTier) Rank() int {
	switch t {
	case PlanStandard:
		return 1
	case PlanPlus:
		return 2
	default:
		return 0
	}
}
