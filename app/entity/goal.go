package entity

import "time"

const GoalStatusActive = "active"

type Goal struct {
	ID                 string
	Title              string
	Category           string
	Status             string
	TargetAmountCents  int64
	CurrentAmountCents int64
	Deadline           *time.Time
	CreatedAt          time.Time
}
