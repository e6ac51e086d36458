package domain

import "time"

// Ticks counts host scheduler steps.
type Ticks int64

const (
	TicksPerSecond Ticks = 20
	TickDuration         = time.Second / time.Duration(TicksPerSecond)
)

func SecondsToTicks(seconds int) Ticks {
	return Ticks(seconds) * TicksPerSecond
}

func (t Ticks) Duration() time.Duration {
	return time.Duration(t) * TickDuration
}
