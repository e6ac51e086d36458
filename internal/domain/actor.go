package domain

import "strings"

type ActorID string

type GameMode string

const (
	GameModeSurvival  GameMode = "survival"
	GameModeAdventure GameMode = "adventure"
	GameModeCreative  GameMode = "creative"
	GameModeSpectator GameMode = "spectator"
)

func ParseGameMode(raw string) (GameMode, bool) {
	mode := GameMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case GameModeSurvival, GameModeAdventure, GameModeCreative, GameModeSpectator:
		return mode, true
	default:
		return "", false
	}
}

// Ordinary reports whether the mode is subject to timed effects wearing off.
// Creative and spectator keep their own flight.
func (m GameMode) Ordinary() bool {
	return m == GameModeSurvival || m == GameModeAdventure
}

type Actor struct {
	ID   ActorID
	Name string
	Mode GameMode
}
