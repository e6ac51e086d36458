package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItemID(t *testing.T) {
	assert.Equal(t, ItemID("flight_feather"), NormalizeItemID("  Flight_Feather "))
	assert.Equal(t, ItemID(""), NormalizeItemID("   "))
}

func TestActionRenderSubstitutesEveryPlaceholder(t *testing.T) {
	action := Action{Text: "tp %player% %player%"}

	assert.Equal(t, "tp Steve Steve", action.Render("Steve"))
	assert.Equal(t, "say hi", Action{Text: "say hi"}.Render("Steve"))
}

func TestActionDelay(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		rendered string
		want     Ticks
	}{
		{name: "no delay", action: Action{Text: "say hi"}, rendered: "say hi", want: 0},
		{name: "unconditional delay", action: Action{Text: "say hi", DelayTicks: 40}, rendered: "say hi", want: 40},
		{name: "prefix matches", action: Action{DelayTicks: 3, DelayWhenPrefix: "sudo"}, rendered: "sudo Steve spawn", want: 3},
		{name: "prefix does not match", action: Action{DelayTicks: 3, DelayWhenPrefix: "sudo"}, rendered: "say Steve", want: 0},
		{name: "negative delay ignored", action: Action{DelayTicks: -5}, rendered: "say hi", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.Delay(tt.rendered))
		})
	}
}

func TestActionsFromCommandsKeepsLegacySudoDelay(t *testing.T) {
	actions := ActionsFromCommands([]string{"say a %player%", "sudo %player% b", "say c"})

	require.Len(t, actions, 3)
	assert.Equal(t, Ticks(0), actions[0].Delay(actions[0].Render("Steve")))
	assert.Equal(t, Ticks(3), actions[1].Delay(actions[1].Render("Steve")))
	assert.Equal(t, Ticks(0), actions[2].Delay(actions[2].Render("Steve")))

	plain := ActionsFromCommands([]string{"say a", "say b"})
	assert.Equal(t, Ticks(0), plain[1].Delay(plain[1].Render("Steve")))
	assert.Empty(t, ActionsFromCommands(nil))
}

func TestItemDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     ItemDefinition
		wantErr error
	}{
		{name: "valid", def: ItemDefinition{ID: "wand", CooldownSeconds: 5, Actions: []Action{{Text: "say hi"}}}},
		{name: "missing id", def: ItemDefinition{}, wantErr: ErrInvalidDefinition},
		{name: "negative cooldown", def: ItemDefinition{ID: "wand", CooldownSeconds: -1}, wantErr: ErrInvalidDefinition},
		{name: "blank action", def: ItemDefinition{ID: "wand", Actions: []Action{{Text: "  "}}}, wantErr: ErrInvalidDefinition},
		{name: "negative delay", def: ItemDefinition{ID: "wand", Actions: []Action{{Text: "say", DelayTicks: -1}}}, wantErr: ErrInvalidDefinition},
		{name: "zero effect duration", def: ItemDefinition{ID: "wand", TimedEffect: &TimedEffect{}}, wantErr: ErrInvalidTimedEffect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimedEffectLabelDefaultsToFlight(t *testing.T) {
	assert.Equal(t, "flight", TimedEffect{DurationSeconds: 5}.Label())
	assert.Equal(t, "haste", TimedEffect{Name: " haste ", DurationSeconds: 5}.Label())
}

func TestTimedEffectSchedule(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     EffectSchedule
	}{
		{name: "long", duration: 60, want: EffectSchedule{Warning: 1000, CountdownStart: 1100, CountdownSteps: 5, Expiry: 1200}},
		{name: "twelve seconds", duration: 12, want: EffectSchedule{Warning: 40, CountdownStart: 140, CountdownSteps: 5, Expiry: 240}},
		{name: "exactly warning lead", duration: 10, want: EffectSchedule{CountdownStart: 100, CountdownSteps: 5, Expiry: 200}},
		{name: "exactly countdown lead", duration: 5, want: EffectSchedule{Expiry: 100}},
		{name: "short", duration: 3, want: EffectSchedule{Expiry: 60}},
		{name: "zero", duration: 0, want: EffectSchedule{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimedEffect{DurationSeconds: tt.duration}.Schedule())
		})
	}
}

func TestTicksConversions(t *testing.T) {
	assert.Equal(t, Ticks(200), SecondsToTicks(10))
	assert.Equal(t, 150*time.Millisecond, Ticks(3).Duration())
	assert.Equal(t, time.Second, Ticks(TicksPerSecond).Duration())
}

func TestCooldownOutcomeRemainingSeconds(t *testing.T) {
	assert.Equal(t, 2.3, CooldownOutcome{Remaining: 2340 * time.Millisecond}.RemainingSeconds())
	assert.Equal(t, 4.0, CooldownOutcome{Remaining: 4 * time.Second}.RemainingSeconds())
	assert.Equal(t, 0.1, CooldownOutcome{Remaining: 60 * time.Millisecond}.RemainingSeconds())
	assert.Zero(t, CooldownOutcome{Allowed: true, Remaining: time.Second}.RemainingSeconds())
	assert.Zero(t, CooldownOutcome{Remaining: -time.Second}.RemainingSeconds())
}

func TestParseGameMode(t *testing.T) {
	mode, ok := ParseGameMode(" Creative ")
	require.True(t, ok)
	assert.Equal(t, GameModeCreative, mode)
	assert.False(t, mode.Ordinary())

	mode, ok = ParseGameMode("adventure")
	require.True(t, ok)
	assert.True(t, mode.Ordinary())

	_, ok = ParseGameMode("hardcore")
	assert.False(t, ok)
}

func TestEffectSessionFinished(t *testing.T) {
	assert.False(t, EffectSession{State: EffectStateCountdown}.Finished())
	assert.True(t, EffectSession{State: EffectStateExpired}.Finished())
	assert.True(t, EffectSession{State: EffectStateSuperseded}.Finished())
	assert.True(t, EffectOverlapSupersede.Valid())
	assert.False(t, EffectOverlapPolicy("stack").Valid())
}
