package cliconfig

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rx80/rusty-kong/pkg/log"
)

// debounceDelay absorbs the editor write-rename-write bursts fsnotify
// reports for a single save.
const debounceDelay = 100 * time.Millisecond

// RuntimeSettings is the subset of Config that can be applied to a running
// game without a restart.
type RuntimeSettings struct {
	TickInterval time.Duration
	LogLevel     string
}

// ConfigWatcher monitors the config file via fsnotify and hands the
// runtime-tunable settings to a callback when the file changes.
type ConfigWatcher struct {
	path     string
	onChange func(RuntimeSettings)
	logger   log.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewConfigWatcher creates a watcher for path. onChange runs on the
// watcher's goroutine after each successful reload.
func NewConfigWatcher(path string, onChange func(RuntimeSettings), logger log.Logger) *ConfigWatcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &ConfigWatcher{
		path:     path,
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches the config file's directory until the context is canceled.
// Watching the directory rather than the file survives editors that replace
// the file on save.
func (w *ConfigWatcher) Run(ctx context.Context) {
	if w.path == "" || w.onChange == nil {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("config watcher: create failed", log.Err(err))
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		w.logger.Error("config watcher: watch failed",
			log.String("dir", dir),
			log.Err(err),
		)
		return
	}

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher: error", log.Err(err))
		}
	}
}

func (w *ConfigWatcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(delay, w.reload)
}

// reload re-reads the file over defaults and, if the result validates,
// hands the runtime-tunable subset to the callback. A broken file is logged
// and skipped; the running game keeps its current settings.
func (w *ConfigWatcher) reload() {
	fc, err := LoadFileConfig(w.path)
	if err != nil {
		w.logger.Warn("config reload: read failed", log.Err(err))
		return
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, nil); err != nil {
		w.logger.Warn("config reload: apply failed", log.Err(err))
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("config reload: invalid", log.Err(err))
		return
	}

	w.logger.Info("configuration reloaded",
		log.Duration("tick", cfg.TickInterval),
		log.String("log_level", cfg.LogLevel),
	)
	w.onChange(RuntimeSettings{
		TickInterval: cfg.TickInterval,
		LogLevel:     cfg.LogLevel,
	})
}
