package domain

import "time"

type SessionID string

type EffectState string

const (
	EffectStateIdle       EffectState = "idle"
	EffectStateActive     EffectState = "active"
	EffectStateWarning    EffectState = "warning"
	EffectStateCountdown  EffectState = "countdown"
	EffectStateExpired    EffectState = "expired"
	EffectStateSuperseded EffectState = "superseded"
)

const (
	WarningLeadSeconds   = 10
	CountdownLeadSeconds = 5
)

// EffectOverlapPolicy decides what happens to a running session when the same
// actor starts another one.
type EffectOverlapPolicy string

const (
	EffectOverlapIndependent EffectOverlapPolicy = "independent"
	EffectOverlapSupersede   EffectOverlapPolicy = "supersede"
)

func (p EffectOverlapPolicy) Valid() bool {
	switch p {
	case EffectOverlapIndependent, EffectOverlapSupersede:
		return true
	default:
		return false
	}
}

type EffectSession struct {
	ID              SessionID
	ActorID         ActorID
	EffectName      string
	StartedAt       time.Time
	DurationSeconds int
	State           EffectState
}

// Finished reports whether no further transitions will run.
func (s EffectSession) Finished() bool {
	return s.State == EffectStateExpired || s.State == EffectStateSuperseded
}

// EffectSchedule holds the tick offsets, from activation, of a timed effect's
// transitions. A zero offset means the transition is not scheduled.
type EffectSchedule struct {
	Warning        Ticks
	CountdownStart Ticks
	CountdownSteps int
	Expiry         Ticks
}

func (e TimedEffect) Schedule() EffectSchedule {
	d := e.DurationSeconds
	if d <= 0 {
		return EffectSchedule{}
	}

	schedule := EffectSchedule{Expiry: SecondsToTicks(d)}
	if d > WarningLeadSeconds {
		schedule.Warning = SecondsToTicks(d - WarningLeadSeconds)
	}
	if d > CountdownLeadSeconds {
		schedule.CountdownStart = SecondsToTicks(d - CountdownLeadSeconds)
		schedule.CountdownSteps = CountdownLeadSeconds
	}
	return schedule
}
