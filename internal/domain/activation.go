package domain

import "time"

type ActivationOutcome string

const (
	OutcomeActivated  ActivationOutcome = "activated"
	OutcomeOnCooldown ActivationOutcome = "on_cooldown"
	OutcomeAborted    ActivationOutcome = "aborted"
	OutcomeIgnored    ActivationOutcome = "ignored"
)

type ActivationRecord struct {
	ID        string
	ActorID   ActorID
	ActorName string
	ItemID    ItemID
	Outcome   ActivationOutcome
	Remaining time.Duration
	Detail    string
	At        time.Time
}
