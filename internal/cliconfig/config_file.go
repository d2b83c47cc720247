package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type fileConfig struct {
	TickInterval string    `toml:"tick_interval"`
	MaxTicks     string    `toml:"max_ticks"`
	LogLevel     string    `toml:"log_level"`
	Rules        fileRules `toml:"rules"`
}

type fileRules struct {
	BootTicks       int `toml:"boot_ticks"`
	AttractTicks    int `toml:"attract_ticks"`
	IntroTicks      int `toml:"intro_ticks"`
	HowHighTicks    int `toml:"how_high_ticks"`
	StageTicks      int `toml:"stage_ticks"`
	BonusStart      int `toml:"bonus_start"`
	BonusDecayTicks int `toml:"bonus_decay_ticks"`
	DeathTicks      int `toml:"death_ticks"`
	WinTicks        int `toml:"win_ticks"`
	RetreatTicks    int `toml:"retreat_ticks"`
	Lives           int `toml:"lives"`
	FinalStage      int `toml:"final_stage"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path,
// ~/.rustykong/config.toml, if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".rustykong", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick", fc.TickInterval, &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setUint64FromString("ticks", fc.MaxTicks, &cfg.MaxTicks); err != nil {
		return err
	}
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("boot-ticks", fc.Rules.BootTicks, &cfg.Rules.BootTicks)
	s.setInt("attract-ticks", fc.Rules.AttractTicks, &cfg.Rules.AttractTicks)
	s.setInt("intro-ticks", fc.Rules.IntroTicks, &cfg.Rules.IntroTicks)
	s.setInt("how-high-ticks", fc.Rules.HowHighTicks, &cfg.Rules.HowHighTicks)
	s.setInt("stage-ticks", fc.Rules.StageTicks, &cfg.Rules.StageTicks)
	s.setInt("bonus-start", fc.Rules.BonusStart, &cfg.Rules.BonusStart)
	s.setInt("bonus-decay-ticks", fc.Rules.BonusDecayTicks, &cfg.Rules.BonusDecayTicks)
	s.setInt("death-ticks", fc.Rules.DeathTicks, &cfg.Rules.DeathTicks)
	s.setInt("win-ticks", fc.Rules.WinTicks, &cfg.Rules.WinTicks)
	s.setInt("retreat-ticks", fc.Rules.RetreatTicks, &cfg.Rules.RetreatTicks)
	s.setInt("lives", fc.Rules.Lives, &cfg.Rules.Lives)
	s.setInt("final-stage", fc.Rules.FinalStage, &cfg.Rules.FinalStage)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
