package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/rx80/rusty-kong/internal/app"
	"github.com/rx80/rusty-kong/internal/cliconfig"
	"github.com/rx80/rusty-kong/internal/game"
	logpkg "github.com/rx80/rusty-kong/pkg/log"
)

const helpBanner = `
 ____  _   _ ____ _____ __   __  _  _____  _   _  ____
|  _ \| | | / ___|_   _|\ \ / / | |/ / _ \| \ | |/ ___|
| |_) | | | \___ \ | |   \ V /  | ' / | | |  \| | |  _
|  _ <| |_| |___) || |    | |   | . \ |_| | |\  | |_| |
|_| \_\\___/|____/ |_|    |_|   |_|\_\___/|_| \_|\____|
`

const helpDescription = `
A headless rendition of the classic barrel-jumping arcade cabinet. The
machine boots, runs its attract loop, and plays itself: intro, climb,
stage, and ending, all driven by a deterministic tick scheduler.

Tuning comes from a TOML file, RUSTYKONG_* environment variables, or the
flags below; flags win over environment, environment wins over the file.
The config file is watched while running, so tick rate and log level can
be changed live.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  rustykong --log-level debug
  rustykong --config ./config.toml --ticks 5000
  rustykong --tick 4ms --lives 5
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "rustykong",
		Short:   "Run the rusty kong arcade state machine",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine config path
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides file config but loses to flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := logpkg.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)

			log.Info().Interface("config", cfg).Msg("configuration")

			logger := logpkg.NewZerologAdapterWithLogger(log)

			g, err := game.New(cfg.Rules, logger)
			if err != nil {
				return fmt.Errorf("create game: %w", err)
			}

			runner, err := app.NewRunner(g.Scheduler(), cfg.TickInterval, cfg.MaxTicks, logger)
			if err != nil {
				return fmt.Errorf("create runner: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-sigCh:
					log.Info().Msg("received signal, stopping...")
					cancel()
				case <-ctx.Done():
				}
			}()

			// Live-tune tick rate and log level from the config file.
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				watcher := cliconfig.NewConfigWatcher(cfgFile, func(rs cliconfig.RuntimeSettings) {
					if lvl, err := logpkg.ParseLevel(rs.LogLevel); err == nil {
						zerolog.SetGlobalLevel(lvl)
					}
					runner.SetInterval(rs.TickInterval)
				}, logger)
				go watcher.Run(ctx)
			}

			if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("run game: %w", err)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.rustykong/config.toml)")
	root.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "duration of one scheduler tick")
	root.Flags().Uint64Var(&cfg.MaxTicks, "ticks", cfg.MaxTicks, "stop after this many ticks (0 = run until interrupted)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.Flags().IntVar(&cfg.Rules.Lives, "lives", cfg.Rules.Lives, "lives per credit")
	root.Flags().IntVar(&cfg.Rules.FinalStage, "final-stage", cfg.Rules.FinalStage, "stage whose clear rolls the ending")
	root.Flags().IntVar(&cfg.Rules.BootTicks, "boot-ticks", cfg.Rules.BootTicks, "length of the power-on sequence")
	root.Flags().IntVar(&cfg.Rules.AttractTicks, "attract-ticks", cfg.Rules.AttractTicks, "attract loop length before a credit is simulated")
	root.Flags().IntVar(&cfg.Rules.IntroTicks, "intro-ticks", cfg.Rules.IntroTicks, "length of the long introduction")
	root.Flags().IntVar(&cfg.Rules.HowHighTicks, "how-high-ticks", cfg.Rules.HowHighTicks, "length of the how-high banner")
	root.Flags().IntVar(&cfg.Rules.StageTicks, "stage-ticks", cfg.Rules.StageTicks, "ticks to survive to clear a stage")
	root.Flags().IntVar(&cfg.Rules.BonusStart, "bonus-start", cfg.Rules.BonusStart, "bonus counter at stage start")
	root.Flags().IntVar(&cfg.Rules.BonusDecayTicks, "bonus-decay-ticks", cfg.Rules.BonusDecayTicks, "interval at which the bonus drops by 100")
	root.Flags().IntVar(&cfg.Rules.DeathTicks, "death-ticks", cfg.Rules.DeathTicks, "length of the death animation")
	root.Flags().IntVar(&cfg.Rules.WinTicks, "win-ticks", cfg.Rules.WinTicks, "length of the stage-clear animation")
	root.Flags().IntVar(&cfg.Rules.RetreatTicks, "retreat-ticks", cfg.Rules.RetreatTicks, "length of the ending sequence")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("rustykong")
		os.Exit(1)
	}
}
