package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".actionitems"
	envPrefix  = "ACTIONITEMS"

	ItemsPathKey            = "items.path"
	JournalPathKey          = "journal.path"
	LogLevelKey             = "log.level"
	LogFormatKey            = "log.format"
	EffectsOverlapKey       = "effects.overlap"
	CooldownSweepSecondsKey = "cooldown.sweep_interval_seconds"
)

// Config is the root application configuration.
type Config struct {
	ItemsPath   string
	JournalPath string
	Log         LogConfig
	Effects     EffectsConfig
	Cooldown    CooldownConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

type EffectsConfig struct {
	Overlap domain.EffectOverlapPolicy
}

type CooldownConfig struct {
	// SweepIntervalSeconds of zero disables periodic ledger sweeps.
	SweepIntervalSeconds int
}

// Load reads ~/.actionitems/config.toml when present, then applies
// ACTIONITEMS_* environment overrides on top of the defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	baseDir := filepath.Join(homeDir, configDir)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetDefault(ItemsPathKey, filepath.Join(baseDir, "items.toml"))
	v.SetDefault(JournalPathKey, filepath.Join(baseDir, "journal.db"))
	v.SetDefault(LogLevelKey, "warn")
	v.SetDefault(LogFormatKey, "text")
	v.SetDefault(EffectsOverlapKey, string(domain.EffectOverlapIndependent))
	v.SetDefault(CooldownSweepSecondsKey, 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ItemsPath:   v.GetString(ItemsPathKey),
		JournalPath: v.GetString(JournalPathKey),
		Log: LogConfig{
			Level:  v.GetString(LogLevelKey),
			Format: v.GetString(LogFormatKey),
		},
		Effects: EffectsConfig{
			Overlap: domain.EffectOverlapPolicy(strings.ToLower(strings.TrimSpace(v.GetString(EffectsOverlapKey)))),
		},
		Cooldown: CooldownConfig{
			SweepIntervalSeconds: v.GetInt(CooldownSweepSecondsKey),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ItemsPath) == "" {
		errs = append(errs, errors.New("items.path is required"))
	}
	if strings.TrimSpace(c.JournalPath) == "" {
		errs = append(errs, errors.New("journal.path is required"))
	}
	if !c.Effects.Overlap.Valid() {
		errs = append(errs, fmt.Errorf("effects.overlap must be %q or %q, got %q",
			domain.EffectOverlapIndependent, domain.EffectOverlapSupersede, c.Effects.Overlap))
	}
	if c.Cooldown.SweepIntervalSeconds < 0 {
		errs = append(errs, fmt.Errorf("cooldown.sweep_interval_seconds must be >= 0, got %d", c.Cooldown.SweepIntervalSeconds))
	}

	return errors.Join(errs...)
}
