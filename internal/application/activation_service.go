package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// ActivationService handles item-activated events: it gates them on the
// cooldown ledger, runs the item's actions and timed effect, consumes the
// item and commits the cooldown.
type ActivationService struct {
	definitions ports.ItemDefinitionLookup
	actors      ports.ActorDirectory
	inventory   ports.Inventory
	notifier    ports.Notifier
	journal     ports.ActivationJournal
	ledger      *CooldownLedger
	actions     *ActionScheduler
	effects     *TimedEffectMachine
	clock       ports.Clock
	logger      *slog.Logger
	ids         *idSource

	locksMu    sync.Mutex
	actorLocks map[domain.ActorID]*actorLock
}

type actorLock struct {
	mu      sync.Mutex
	holders int
}

type ActivationDeps struct {
	Definitions ports.ItemDefinitionLookup
	Actors      ports.ActorDirectory
	Inventory   ports.Inventory
	Notifier    ports.Notifier
	// Journal is optional.
	Journal ports.ActivationJournal
	Ledger  *CooldownLedger
	Actions *ActionScheduler
	Effects *TimedEffectMachine
	Clock   ports.Clock
	Logger  *slog.Logger
}

func NewActivationService(deps ActivationDeps) *ActivationService {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Ledger == nil {
		deps.Ledger = NewCooldownLedger()
	}

	return &ActivationService{
		definitions: deps.Definitions,
		actors:      deps.Actors,
		inventory:   deps.Inventory,
		notifier:    deps.Notifier,
		journal:     deps.Journal,
		ledger:      deps.Ledger,
		actions:     deps.Actions,
		effects:     deps.Effects,
		clock:       deps.Clock,
		logger:      deps.Logger,
		ids:         newIDSource(deps.Clock),
		actorLocks:  map[domain.ActorID]*actorLock{},
	}
}

// Activate processes one item use. A cooldown block is reported through the
// result, not as an error. Dispatch, effect and consume failures after the
// cooldown check are joined into the returned error; the cooldown is still
// committed because the item was used.
func (s *ActivationService) Activate(ctx context.Context, cmd ActivateCommand) (ActivationResult, error) {
	itemID := domain.NormalizeItemID(cmd.ItemTag)
	if itemID == "" {
		return ActivationResult{Outcome: domain.OutcomeIgnored}, nil
	}

	def, err := s.definitions.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			s.record(ctx, domain.ActivationRecord{ActorID: cmd.ActorID, ItemID: itemID, Outcome: domain.OutcomeAborted, Detail: "unknown item"})
		}
		return ActivationResult{Outcome: domain.OutcomeAborted, ItemID: itemID}, fmt.Errorf("get item definition %s: %w", itemID, err)
	}

	actor, ok := s.actors.Lookup(ctx, cmd.ActorID)
	if !ok {
		s.record(ctx, domain.ActivationRecord{ActorID: cmd.ActorID, ItemID: def.ID, Outcome: domain.OutcomeAborted, Detail: "unknown actor"})
		return ActivationResult{Outcome: domain.OutcomeAborted, ItemID: itemID}, fmt.Errorf("activate %s: %w", itemID, domain.ErrActorNotFound)
	}

	unlock := s.lockActor(actor.ID)
	defer unlock()

	now := s.clock.Now()
	result := ActivationResult{ItemID: def.ID, Actor: actor}

	result.Cooldown = s.ledger.CheckAndReserve(actor.ID, def.ID, def.CooldownSeconds, now)
	if !result.Cooldown.Allowed {
		result.Outcome = domain.OutcomeOnCooldown
		s.logger.Debug("item on cooldown",
			slog.String("actor", actor.Name),
			slog.String("item", string(def.ID)),
			slog.Duration("remaining", result.Cooldown.Remaining),
		)
		if err := s.notifier.Send(ctx, actor.ID, cooldownNotice(result.Cooldown)); err != nil {
			s.logger.Warn("send cooldown notice", slog.String("actor", actor.Name), slog.Any("error", err))
		}
		s.record(ctx, domain.ActivationRecord{ActorID: actor.ID, ActorName: actor.Name, ItemID: def.ID, Outcome: result.Outcome, Remaining: result.Cooldown.Remaining, At: now})
		return result, nil
	}

	if err := def.Validate(); err != nil {
		result.Outcome = domain.OutcomeAborted
		s.record(ctx, domain.ActivationRecord{ActorID: actor.ID, ActorName: actor.Name, ItemID: def.ID, Outcome: result.Outcome, Detail: err.Error(), At: now})
		return result, err
	}

	var errs []error
	if err := s.actions.Run(ctx, def.Actions, actor.Name); err != nil {
		errs = append(errs, err)
	}

	if def.TimedEffect != nil {
		session, err := s.effects.Start(ctx, actor.ID, *def.TimedEffect)
		if err != nil {
			errs = append(errs, err)
		} else {
			result.Session = &session
		}
	}

	if def.ConsumeOnUse {
		if err := s.inventory.ConsumeOne(ctx, actor.ID, def.ID); err != nil {
			errs = append(errs, fmt.Errorf("consume %s: %w", def.ID, err))
		} else {
			result.Consumed = true
		}
	}

	s.ledger.Commit(actor.ID, def.ID, now, def.CooldownSeconds)
	result.Outcome = domain.OutcomeActivated

	joined := errors.Join(errs...)
	record := domain.ActivationRecord{ActorID: actor.ID, ActorName: actor.Name, ItemID: def.ID, Outcome: result.Outcome, At: now}
	if joined != nil {
		record.Detail = joined.Error()
	}
	s.record(ctx, record)

	return result, joined
}

// ScheduleCooldownSweep periodically drops expired ledger entries.
func (s *ActivationService) ScheduleCooldownSweep(scheduler ports.Scheduler, interval domain.Ticks) ports.TaskHandle {
	return scheduler.Every(interval, interval, func(context.Context, ports.TaskHandle) {
		if removed := s.ledger.Sweep(s.clock.Now()); removed > 0 {
			s.logger.Debug("swept cooldown entries", slog.Int("removed", removed))
		}
	})
}

func (s *ActivationService) Ledger() *CooldownLedger {
	return s.ledger
}

func (s *ActivationService) record(ctx context.Context, record domain.ActivationRecord) {
	if s.journal == nil {
		return
	}
	if record.At.IsZero() {
		record.At = s.clock.Now()
	}
	record.At = record.At.UTC()
	record.ID = s.ids.next()

	if err := s.journal.Record(ctx, record); err != nil {
		s.logger.Warn("record activation", slog.String("item", string(record.ItemID)), slog.Any("error", err))
	}
}

// lockActor serializes activations of one actor. Idle locks are dropped so
// the map only holds actors with an activation in flight.
func (s *ActivationService) lockActor(actorID domain.ActorID) func() {
	s.locksMu.Lock()
	lock, ok := s.actorLocks[actorID]
	if !ok {
		lock = &actorLock{}
		s.actorLocks[actorID] = lock
	}
	lock.holders++
	s.locksMu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		s.locksMu.Lock()
		defer s.locksMu.Unlock()

		lock.holders--
		if lock.holders == 0 {
			delete(s.actorLocks, actorID)
		}
	}
}

// heldLocks reports how many actors currently have a lock entry.
func (s *ActivationService) heldLocks() int {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	return len(s.actorLocks)
}
