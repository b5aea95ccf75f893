package entitlement

import (
	"fmt"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

// Prompt is everything the limit modal shows: why the action was blocked,
// where the user stands and what the next tier unlocks.
type Prompt struct {
	Kind         Kind
	CurrentPlan  entity.PlanTier
	CurrentCount int
	Decision     Decision
	Suggestion   UpgradeSuggestion
	Title        string
	Badge        string
}

// LimitPrompt builds the upgrade prompt for a denied action. ok is false when
// the user is already on the top tier and there is nothing to offer.
func LimitPrompt(kind Kind, tier entity.PlanTier, count int) (Prompt, bool) {
	decision := Check(kind, tier, count)
	suggestion := GetUpgradeSuggestion(tier)

	prompt := Prompt{
		Kind:         kind,
		CurrentPlan:  tier,
		CurrentCount: count,
		Decision:     decision,
		Suggestion:   suggestion,
		Title:        "Goal Limit Reached",
		Badge:        fmt.Sprintf("%d / %d", count, decision.Limit),
	}
	if kind == KindChallenges {
		prompt.Title = "Challenge Limit Reached"
	}
	if decision.Reason == ReasonFeatureDisabled {
		prompt.Badge = fmt.Sprintf("%d / -", count)
	}

	return prompt, suggestion.SuggestedPlan != nil
}
