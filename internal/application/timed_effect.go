package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// TimedEffectMachine runs temporary abilities: enable, a 10 second warning, a
// five step countdown and the expiry, all timed from the activation tick.
type TimedEffectMachine struct {
	effects   ports.EffectCapability
	notifier  ports.Notifier
	actors    ports.ActorDirectory
	scheduler ports.Scheduler
	clock     ports.Clock
	policy    domain.EffectOverlapPolicy
	logger    *slog.Logger
	ids       *idSource

	mu       sync.Mutex
	sessions map[domain.ActorID][]*effectSession
}

type effectSession struct {
	mu        sync.Mutex
	state     domain.EffectSession
	label     string
	handles   []ports.TaskHandle
	cancelled bool
}

func NewTimedEffectMachine(
	effects ports.EffectCapability,
	notifier ports.Notifier,
	actors ports.ActorDirectory,
	scheduler ports.Scheduler,
	clock ports.Clock,
	policy domain.EffectOverlapPolicy,
	logger *slog.Logger,
) *TimedEffectMachine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if !policy.Valid() {
		policy = domain.EffectOverlapIndependent
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TimedEffectMachine{
		effects:   effects,
		notifier:  notifier,
		actors:    actors,
		scheduler: scheduler,
		clock:     clock,
		policy:    policy,
		logger:    logger,
		ids:       newIDSource(clock),
		sessions:  map[domain.ActorID][]*effectSession{},
	}
}

// Start enables the effect for actorID and schedules its remaining
// transitions. Effects with a non-positive duration are rejected.
func (m *TimedEffectMachine) Start(ctx context.Context, actorID domain.ActorID, effect domain.TimedEffect) (domain.EffectSession, error) {
	if err := effect.Validate(); err != nil {
		return domain.EffectSession{}, err
	}

	actor, ok := m.actors.Lookup(ctx, actorID)
	if !ok {
		return domain.EffectSession{}, fmt.Errorf("start %s: %w", effect.Label(), domain.ErrActorNotFound)
	}

	// The previous session keeps its timers until the new one is enabled.
	if err := m.effects.Enable(ctx, actorID); err != nil {
		return domain.EffectSession{}, fmt.Errorf("enable %s: %w", effect.Label(), err)
	}

	if m.policy == domain.EffectOverlapSupersede {
		m.supersede(actorID)
	}

	duration := effect.DurationSeconds
	session := &effectSession{
		label: effect.Label(),
		state: domain.EffectSession{
			ID:              domain.SessionID(m.ids.next()),
			ActorID:         actorID,
			EffectName:      effect.Label(),
			StartedAt:       m.clock.Now(),
			DurationSeconds: duration,
			State:           domain.EffectStateActive,
		},
	}

	m.mu.Lock()
	m.sessions[actorID] = append(m.sessions[actorID], session)
	m.mu.Unlock()

	m.notify(ctx, actorID, formatMessage(effectEnabledMessage, session.label, duration))

	session.mu.Lock()
	defer session.mu.Unlock()

	schedule := effect.Schedule()
	if schedule.Warning > 0 {
		session.handles = append(session.handles, m.scheduler.After(
			schedule.Warning,
			func(ctx context.Context) { m.warn(ctx, session) },
		))
	}

	if schedule.CountdownSteps > 0 {
		remaining := schedule.CountdownSteps
		session.handles = append(session.handles, m.scheduler.Every(
			schedule.CountdownStart,
			domain.TicksPerSecond,
			func(ctx context.Context, handle ports.TaskHandle) {
				m.countdown(ctx, session, remaining)
				remaining--
				if remaining == 0 {
					handle.Cancel()
				}
			},
		))
	}

	session.handles = append(session.handles, m.scheduler.After(
		schedule.Expiry,
		func(ctx context.Context) { m.expire(ctx, session) },
	))

	m.logger.Info("timed effect started",
		slog.String("session", string(session.state.ID)),
		slog.String("actor", actor.Name),
		slog.String("effect", session.label),
		slog.Int("duration_seconds", duration),
	)

	return session.state, nil
}

// ActiveSessions returns the unfinished sessions of actorID.
func (m *TimedEffectMachine) ActiveSessions(actorID domain.ActorID) []domain.EffectSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := make([]domain.EffectSession, 0, len(m.sessions[actorID]))
	for _, session := range m.sessions[actorID] {
		session.mu.Lock()
		sessions = append(sessions, session.state)
		session.mu.Unlock()
	}
	return sessions
}

func (m *TimedEffectMachine) warn(ctx context.Context, session *effectSession) {
	actorID, ok := m.transition(session, domain.EffectStateWarning)
	if !ok {
		return
	}
	if _, online := m.actors.Lookup(ctx, actorID); !online {
		m.logger.Debug("skipping effect warning for offline actor", slog.String("actor_id", string(actorID)))
		return
	}

	m.notify(ctx, actorID, formatMessage(effectWarningMessage, session.label))
}

func (m *TimedEffectMachine) countdown(ctx context.Context, session *effectSession, count int) {
	actorID, ok := m.transition(session, domain.EffectStateCountdown)
	if !ok {
		return
	}
	if _, online := m.actors.Lookup(ctx, actorID); !online {
		return
	}

	m.notify(ctx, actorID, formatMessage(effectCountdownMessage, session.label, count))
}

func (m *TimedEffectMachine) expire(ctx context.Context, session *effectSession) {
	actorID, ok := m.transition(session, domain.EffectStateExpired)
	if !ok {
		return
	}
	m.forget(actorID, session)

	actor, online := m.actors.Lookup(ctx, actorID)
	if !online {
		m.logger.Debug("skipping effect expiry for offline actor", slog.String("actor_id", string(actorID)))
		return
	}
	if !actor.Mode.Ordinary() {
		m.logger.Debug("effect expiry suppressed by game mode",
			slog.String("actor", actor.Name),
			slog.String("mode", string(actor.Mode)),
		)
		return
	}

	if err := m.effects.Disable(ctx, actorID); err != nil {
		m.logger.Error("disable timed effect", slog.String("actor", actor.Name), slog.Any("error", err))
		return
	}
	m.notify(ctx, actorID, formatMessage(effectExpiredMessage, session.label))
	m.logger.Info("timed effect expired",
		slog.String("session", string(session.state.ID)),
		slog.String("actor", actor.Name),
	)
}

// transition moves a live session to state and reports its actor. Cancelled
// sessions report false.
func (m *TimedEffectMachine) transition(session *effectSession, state domain.EffectState) (domain.ActorID, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.cancelled {
		return "", false
	}
	session.state.State = state
	return session.state.ActorID, true
}

func (m *TimedEffectMachine) supersede(actorID domain.ActorID) {
	m.mu.Lock()
	previous := m.sessions[actorID]
	delete(m.sessions, actorID)
	m.mu.Unlock()

	for _, session := range previous {
		session.mu.Lock()
		session.cancelled = true
		session.state.State = domain.EffectStateSuperseded
		for _, handle := range session.handles {
			handle.Cancel()
		}
		session.mu.Unlock()
	}
}

func (m *TimedEffectMachine) forget(actorID domain.ActorID, session *effectSession) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := m.sessions[actorID]
	for i, candidate := range sessions {
		if candidate == session {
			sessions = append(sessions[:i], sessions[i+1:]...)
			break
		}
	}
	if len(sessions) == 0 {
		delete(m.sessions, actorID)
		return
	}
	m.sessions[actorID] = sessions
}

func (m *TimedEffectMachine) notify(ctx context.Context, actorID domain.ActorID, message string) {
	if err := m.notifier.Send(ctx, actorID, message); err != nil {
		m.logger.Warn("send notification", slog.String("actor_id", string(actorID)), slog.Any("error", err))
	}
}
