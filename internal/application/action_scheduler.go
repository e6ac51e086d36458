package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// ActionScheduler dispatches an item's command sequence, handing delayed
// commands to the host scheduler.
type ActionScheduler struct {
	executor  ports.CommandExecutor
	scheduler ports.Scheduler
	logger    *slog.Logger
}

func NewActionScheduler(executor ports.CommandExecutor, scheduler ports.Scheduler, logger *slog.Logger) *ActionScheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ActionScheduler{executor: executor, scheduler: scheduler, logger: logger}
}

// Run dispatches immediate actions in order and queues delayed ones. Every
// immediate action is attempted; their dispatch failures are joined into the
// returned error. Delayed failures are logged when they happen.
func (s *ActionScheduler) Run(ctx context.Context, actions []domain.Action, actorName string) error {
	var errs []error

	for _, action := range actions {
		command := action.Render(actorName)

		if delay := action.Delay(command); delay > 0 {
			s.scheduler.After(delay, func(ctx context.Context) {
				if err := s.executor.Dispatch(ctx, command); err != nil {
					s.logger.Error("delayed action failed",
						slog.String("command", command),
						slog.String("actor", actorName),
						slog.Any("error", err),
					)
				}
			})
			continue
		}

		if err := s.executor.Dispatch(ctx, command); err != nil {
			errs = append(errs, &domain.DispatchError{Command: command, Err: err})
		}
	}

	return errors.Join(errs...)
}
