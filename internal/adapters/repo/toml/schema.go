package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Items   []itemSchema `toml:"items"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported items schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type itemSchema struct {
	ID           string   `toml:"id"`
	Material     string   `toml:"material,omitempty"`
	DisplayName  string   `toml:"display_name,omitempty"`
	Lore         []string `toml:"lore,omitempty"`
	ModelData    int      `toml:"model_data,omitempty"`
	Cooldown     int      `toml:"cooldown"`
	ConsumeOnUse bool     `toml:"consume_on_use"`
	// Commands is the pre-actions format, read but never written.
	Commands    []string           `toml:"commands,omitempty"`
	Actions     []actionSchema     `toml:"actions,omitempty"`
	TimedEffect *timedEffectSchema `toml:"timed_effect,omitempty"`
}

type actionSchema struct {
	Text            string `toml:"text"`
	DelayTicks      int64  `toml:"delay_ticks,omitempty"`
	DelayWhenPrefix string `toml:"delay_when_prefix,omitempty"`
}

type timedEffectSchema struct {
	Name     string `toml:"name,omitempty"`
	Duration int    `toml:"duration"`
}
