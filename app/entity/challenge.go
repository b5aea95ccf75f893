package entity

import "time"

type Challenge struct {
	ID                string
	CreatorID         string
	Title             string
	Category          string
	Status            string
	TargetAmountCents int64
	MaxParticipants   int32
	CreatedAt         time.Time
}
