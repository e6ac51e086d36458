package domain

import (
	"math"
	"time"
)

type CooldownKey struct {
	ActorID ActorID
	ItemID  ItemID
}

type CooldownOutcome struct {
	Allowed   bool
	Remaining time.Duration
}

// RemainingSeconds is the blocked time left, rounded to one decimal for display.
func (o CooldownOutcome) RemainingSeconds() float64 {
	if o.Allowed || o.Remaining <= 0 {
		return 0
	}
	return math.Round(o.Remaining.Seconds()*10) / 10
}
