package domain

import (
	"fmt"
	"strings"
)

type ItemID string

const (
	PlayerPlaceholder = "%player%"
	DefaultMaterial   = "STONE"

	// Legacy command lists delay the second command when it is a sudo call.
	legacyDelayedIndex  = 1
	legacyDelayedPrefix = "sudo"
	legacyDelayTicks    = Ticks(3)
)

type ItemDefinition struct {
	ID              ItemID
	Material        string
	DisplayName     string
	Lore            []string
	ModelData       int
	CooldownSeconds int
	ConsumeOnUse    bool
	Actions         []Action
	TimedEffect     *TimedEffect
}

type Action struct {
	Text       string
	DelayTicks Ticks
	// DelayWhenPrefix limits DelayTicks to rendered commands starting with it.
	DelayWhenPrefix string
}

type TimedEffect struct {
	Name            string
	DurationSeconds int
}

// NormalizeItemID lower-cases and trims an identifier the way item tags are stored.
func NormalizeItemID(raw string) ItemID {
	return ItemID(strings.ToLower(strings.TrimSpace(raw)))
}

// Render substitutes the acting player's name into the command template.
func (a Action) Render(actorName string) string {
	return strings.ReplaceAll(a.Text, PlayerPlaceholder, actorName)
}

// Delay returns the scheduling delay for an already rendered command.
func (a Action) Delay(rendered string) Ticks {
	if a.DelayTicks <= 0 {
		return 0
	}
	if a.DelayWhenPrefix != "" && !strings.HasPrefix(rendered, a.DelayWhenPrefix) {
		return 0
	}
	return a.DelayTicks
}

// ActionsFromCommands converts a plain command list into actions, keeping the
// historical rule that a sudo command in second position runs 3 ticks late.
func ActionsFromCommands(commands []string) []Action {
	actions := make([]Action, 0, len(commands))
	for i, command := range commands {
		action := Action{Text: command}
		if i == legacyDelayedIndex {
			action.DelayTicks = legacyDelayTicks
			action.DelayWhenPrefix = legacyDelayedPrefix
		}
		actions = append(actions, action)
	}
	return actions
}

func (d ItemDefinition) HasTimedEffect() bool {
	return d.TimedEffect != nil
}

func (d ItemDefinition) Validate() error {
	if strings.TrimSpace(string(d.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidDefinition)
	}
	if d.CooldownSeconds < 0 {
		return fmt.Errorf("%w: item %s: cooldown must not be negative", ErrInvalidDefinition, d.ID)
	}
	for i, action := range d.Actions {
		if strings.TrimSpace(action.Text) == "" {
			return fmt.Errorf("%w: item %s: action %d is empty", ErrInvalidDefinition, d.ID, i)
		}
		if action.DelayTicks < 0 {
			return fmt.Errorf("%w: item %s: action %d has negative delay", ErrInvalidDefinition, d.ID, i)
		}
	}
	if d.TimedEffect != nil {
		if err := d.TimedEffect.Validate(); err != nil {
			return fmt.Errorf("item %s: %w", d.ID, err)
		}
	}

	return nil
}

func (e TimedEffect) Validate() error {
	if e.DurationSeconds <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidTimedEffect, e.DurationSeconds)
	}
	return nil
}

// Label is the player-facing effect name.
func (e TimedEffect) Label() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return "flight"
}
