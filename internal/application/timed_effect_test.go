package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/actionitems/internal/adapters/host/memory"
	"github.com/bnema/actionitems/internal/adapters/scheduler/tick"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timedMessage struct {
	Tick domain.Ticks
	Text string
}

// tickNotifier records plain message text with the tick it was sent on.
type tickNotifier struct {
	mu        sync.Mutex
	scheduler *tick.Scheduler
	messages  []timedMessage
}

func (n *tickNotifier) Send(_ context.Context, _ domain.ActorID, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, timedMessage{Tick: n.scheduler.Now(), Text: domain.StripColorCodes(message)})
	return nil
}

func (n *tickNotifier) Messages() []timedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]timedMessage(nil), n.messages...)
}

type effectFixture struct {
	world     *memory.World
	scheduler *tick.Scheduler
	notifier  *tickNotifier
	machine   *TimedEffectMachine
	actor     domain.Actor
}

func newEffectFixture(t *testing.T, mode domain.GameMode, policy domain.EffectOverlapPolicy) effectFixture {
	t.Helper()

	world := memory.NewWorld()
	scheduler := tick.New(nil)
	notifier := &tickNotifier{scheduler: scheduler}
	clock := tick.NewClock(scheduler, time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC))

	return effectFixture{
		world:     world,
		scheduler: scheduler,
		notifier:  notifier,
		machine:   NewTimedEffectMachine(world, notifier, world, scheduler, clock, policy, nil),
		actor:     world.Join("Steve", mode),
	}
}

func TestTimedEffectFullTimeline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	session, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)
	assert.Equal(t, domain.EffectStateActive, session.State)
	assert.Equal(t, "flight", session.EffectName)
	assert.NotEmpty(t, session.ID)
	assert.True(t, f.world.EffectEnabled(f.actor.ID))

	elapsed := f.scheduler.AdvanceUntilIdle(ctx, 1000)
	assert.Equal(t, domain.Ticks(240), elapsed)

	assert.Equal(t, []timedMessage{
		{Tick: 0, Text: "Your flight is active for 12 seconds!"},
		{Tick: 40, Text: "Your flight will wear off in 10 seconds!"},
		{Tick: 140, Text: "Your flight ends in 5..."},
		{Tick: 160, Text: "Your flight ends in 4..."},
		{Tick: 180, Text: "Your flight ends in 3..."},
		{Tick: 200, Text: "Your flight ends in 2..."},
		{Tick: 220, Text: "Your flight ends in 1..."},
		{Tick: 240, Text: "Your flight has worn off."},
	}, f.notifier.Messages())
	assert.False(t, f.world.EffectEnabled(f.actor.ID))
	assert.Empty(t, f.machine.ActiveSessions(f.actor.ID))
}

func TestTimedEffectShortDurationSkipsWarningAndCountdown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{Name: "haste", DurationSeconds: 5})
	require.NoError(t, err)

	f.scheduler.AdvanceUntilIdle(ctx, 1000)

	assert.Equal(t, []timedMessage{
		{Tick: 0, Text: "Your haste is active for 5 seconds!"},
		{Tick: 100, Text: "Your haste has worn off."},
	}, f.notifier.Messages())
}

func TestTimedEffectSessionStateFollowsTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)

	f.scheduler.Advance(ctx, 40)
	require.Len(t, f.machine.ActiveSessions(f.actor.ID), 1)
	assert.Equal(t, domain.EffectStateWarning, f.machine.ActiveSessions(f.actor.ID)[0].State)

	f.scheduler.Advance(ctx, 100)
	assert.Equal(t, domain.EffectStateCountdown, f.machine.ActiveSessions(f.actor.ID)[0].State)
}

func TestTimedEffectExpirySuppressedOutsideOrdinaryModes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)

	f.scheduler.Advance(ctx, 100)
	require.NoError(t, f.world.SetMode(f.actor.ID, domain.GameModeCreative))
	f.scheduler.AdvanceUntilIdle(ctx, 1000)

	assert.True(t, f.world.EffectEnabled(f.actor.ID))
	messages := f.notifier.Messages()
	assert.Equal(t, "Your flight ends in 1...", messages[len(messages)-1].Text)
	assert.Empty(t, f.machine.ActiveSessions(f.actor.ID))
}

func TestTimedEffectOfflineActorCallbacksAreNoOps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeAdventure, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)

	f.scheduler.Advance(ctx, 50)
	f.world.Leave(f.actor.ID)
	f.scheduler.AdvanceUntilIdle(ctx, 1000)

	assert.Len(t, f.notifier.Messages(), 2)
	assert.Zero(t, f.scheduler.Pending())
	assert.Empty(t, f.machine.ActiveSessions(f.actor.ID))
}

func TestTimedEffectIndependentSessionsBothExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)
	f.scheduler.Advance(ctx, 100)
	_, err = f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)
	assert.Len(t, f.machine.ActiveSessions(f.actor.ID), 2)

	f.scheduler.AdvanceUntilIdle(ctx, 1000)

	var expiries []domain.Ticks
	for _, message := range f.notifier.Messages() {
		if message.Text == "Your flight has worn off." {
			expiries = append(expiries, message.Tick)
		}
	}
	assert.Equal(t, []domain.Ticks{240, 340}, expiries)
}

func TestTimedEffectSupersedeCancelsPreviousSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapSupersede)

	first, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)
	f.scheduler.Advance(ctx, 100)

	second, err := f.machine.Start(ctx, f.actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)

	active := f.machine.ActiveSessions(f.actor.ID)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
	assert.NotEqual(t, first.ID, second.ID)

	f.scheduler.Advance(ctx, 140)
	assert.True(t, f.world.EffectEnabled(f.actor.ID), "superseded expiry must not disable the effect")

	f.scheduler.AdvanceUntilIdle(ctx, 1000)
	assert.False(t, f.world.EffectEnabled(f.actor.ID))

	var expiries []domain.Ticks
	for _, message := range f.notifier.Messages() {
		if message.Text == "Your flight has worn off." {
			expiries = append(expiries, message.Tick)
		}
	}
	assert.Equal(t, []domain.Ticks{340}, expiries)
}

func TestTimedEffectRejectsInvalidDuration(t *testing.T) {
	t.Parallel()

	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(context.Background(), f.actor.ID, domain.TimedEffect{DurationSeconds: 0})
	require.ErrorIs(t, err, domain.ErrInvalidTimedEffect)
	assert.Zero(t, f.scheduler.Pending())
	assert.False(t, f.world.EffectEnabled(f.actor.ID))
}

func TestTimedEffectUnknownActor(t *testing.T) {
	t.Parallel()

	f := newEffectFixture(t, domain.GameModeSurvival, domain.EffectOverlapIndependent)

	_, err := f.machine.Start(context.Background(), "ghost", domain.TimedEffect{DurationSeconds: 12})
	require.ErrorIs(t, err, domain.ErrActorNotFound)
	assert.Zero(t, f.scheduler.Pending())
}

func TestTimedEffectEnableFailureSchedulesNothing(t *testing.T) {
	t.Parallel()

	world := memory.NewWorld()
	actor := world.Join("Steve", domain.GameModeSurvival)
	scheduler := tick.New(nil)
	effects := mocks.NewMockEffectCapability(t)
	notifier := mocks.NewMockNotifier(t)

	enableErr := errors.New("flight unsupported")
	effects.EXPECT().Enable(mockAnyContext(), actor.ID).Return(enableErr)

	machine := NewTimedEffectMachine(effects, notifier, world, scheduler, nil, domain.EffectOverlapIndependent, nil)
	_, err := machine.Start(context.Background(), actor.ID, domain.TimedEffect{DurationSeconds: 12})

	require.ErrorIs(t, err, enableErr)
	assert.Zero(t, scheduler.Pending())
	assert.Empty(t, machine.ActiveSessions(actor.ID))
}

func TestTimedEffectSupersedeKeepsPreviousSessionWhenEnableFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	world := memory.NewWorld()
	actor := world.Join("Steve", domain.GameModeSurvival)
	scheduler := tick.New(nil)
	notifier := &tickNotifier{scheduler: scheduler}

	rejected := errors.New("enable rejected")
	effects := mocks.NewMockEffectCapability(t)
	effects.EXPECT().Enable(mockAnyContext(), actor.ID).Return(nil).Once()
	effects.EXPECT().Enable(mockAnyContext(), actor.ID).Return(rejected).Once()
	effects.EXPECT().Disable(mockAnyContext(), actor.ID).Return(nil).Once()

	machine := NewTimedEffectMachine(effects, notifier, world, scheduler, nil, domain.EffectOverlapSupersede, nil)

	first, err := machine.Start(ctx, actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.NoError(t, err)
	scheduler.Advance(ctx, 20)

	_, err = machine.Start(ctx, actor.ID, domain.TimedEffect{DurationSeconds: 12})
	require.ErrorIs(t, err, rejected)

	active := machine.ActiveSessions(actor.ID)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	elapsed := scheduler.AdvanceUntilIdle(ctx, 10000)
	assert.Equal(t, domain.Ticks(220), elapsed)
	assert.Empty(t, machine.ActiveSessions(actor.ID))

	messages := notifier.Messages()
	assert.Equal(t, timedMessage{Tick: 240, Text: "Your flight has worn off."}, messages[len(messages)-1])
}
