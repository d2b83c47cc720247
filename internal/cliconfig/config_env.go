package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (RUSTYKONG_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick", os.Getenv("RUSTYKONG_TICK_INTERVAL"), &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setUint64FromString("ticks", os.Getenv("RUSTYKONG_MAX_TICKS"), &cfg.MaxTicks); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv("RUSTYKONG_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("boot-ticks", os.Getenv("RUSTYKONG_BOOT_TICKS"), &cfg.Rules.BootTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("attract-ticks", os.Getenv("RUSTYKONG_ATTRACT_TICKS"), &cfg.Rules.AttractTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("intro-ticks", os.Getenv("RUSTYKONG_INTRO_TICKS"), &cfg.Rules.IntroTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("how-high-ticks", os.Getenv("RUSTYKONG_HOW_HIGH_TICKS"), &cfg.Rules.HowHighTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("stage-ticks", os.Getenv("RUSTYKONG_STAGE_TICKS"), &cfg.Rules.StageTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("bonus-start", os.Getenv("RUSTYKONG_BONUS_START"), &cfg.Rules.BonusStart); err != nil {
		return err
	}
	if err := s.setIntFromString("bonus-decay-ticks", os.Getenv("RUSTYKONG_BONUS_DECAY_TICKS"), &cfg.Rules.BonusDecayTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("death-ticks", os.Getenv("RUSTYKONG_DEATH_TICKS"), &cfg.Rules.DeathTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("win-ticks", os.Getenv("RUSTYKONG_WIN_TICKS"), &cfg.Rules.WinTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("retreat-ticks", os.Getenv("RUSTYKONG_RETREAT_TICKS"), &cfg.Rules.RetreatTicks); err != nil {
		return err
	}
	if err := s.setIntFromString("lives", os.Getenv("RUSTYKONG_LIVES"), &cfg.Rules.Lives); err != nil {
		return err
	}
	if err := s.setIntFromString("final-stage", os.Getenv("RUSTYKONG_FINAL_STAGE"), &cfg.Rules.FinalStage); err != nil {
		return err
	}

	return nil
}
