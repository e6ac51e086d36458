package tick

import (
	"time"

	"github.com/bnema/actionitems/internal/ports"
)

// Clock reports simulated wall time: base plus the ticks processed so far.
type Clock struct {
	scheduler *Scheduler
	base      time.Time
}

var _ ports.Clock = Clock{}

func NewClock(scheduler *Scheduler, base time.Time) Clock {
	return Clock{scheduler: scheduler, base: base}
}

func (c Clock) Now() time.Time {
	return c.base.Add(c.scheduler.Now().Duration())
}
