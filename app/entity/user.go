package entity

import "time"

type User struct {
	ID                     string
	Username               string
	Email                  string
	Avatar                 string
	Plan                   PlanTier
	TotalPoints            int64
	Level                  int32
	HasCompletedOnboarding bool
	CreatedAt              time.Time
}
