package ports

import (
	"context"

	"github.com/bnema/actionitems/internal/domain"
)

type Task func(ctx context.Context)

// RepeatingTask receives its own handle so it can stop itself.
type RepeatingTask func(ctx context.Context, handle TaskHandle)

type TaskHandle interface {
	Cancel()
	Cancelled() bool
}

// Scheduler is the host's cooperative tick scheduler. Tasks never run on the
// caller's goroutine.
type Scheduler interface {
	After(delay domain.Ticks, task Task) TaskHandle
	Every(start, period domain.Ticks, task RepeatingTask) TaskHandle
}
