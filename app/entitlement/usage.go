package entitlement

import (
	"strings"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

// Usage is derived from the user's collections at decision time and never stored.
type Usage struct {
	ActiveGoals       int
	CreatedChallenges int
}

func CountActiveGoals(goals []*entity.Goal) int {
	count := 0
	for _, goal := range goals {
		if goal != nil && strings.EqualFold(goal.Status, entity.GoalStatusActive) {
			count++
		}
	}
	return count
}

func CountCreatedChallenges(challenges []*entity.Challenge, userID string) int {
	if userID == "" {
		return 0
	}
	count := 0
	for _, challenge := range challenges {
		if challenge != nil && challenge.CreatorID == userID {
			count++
		}
	}
	return count
}

func (u Usage) CountFor(kind Kind) int {
	if kind == KindChallenges {
		return u.CreatedChallenges
	}
	return u.ActiveGoals
}
