package cliconfig

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `
tick_interval = "16ms"
log_level = "info"
`)

	changes := make(chan RuntimeSettings, 4)
	w := NewConfigWatcher(path, func(rs RuntimeSettings) {
		changes <- rs
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give fsnotify a moment to register the directory watch.
	time.Sleep(200 * time.Millisecond)

	content := `
tick_interval = "8ms"
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case rs := <-changes:
		if rs.TickInterval != 8*time.Millisecond {
			t.Errorf("TickInterval = %v, want 8ms", rs.TickInterval)
		}
		if rs.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", rs.LogLevel)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload observed after config write")
	}
}

func TestConfigWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "log_level = \"info\"\n")

	changes := make(chan RuntimeSettings, 4)
	w := NewConfigWatcher(path, func(rs RuntimeSettings) {
		changes <- rs
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(200 * time.Millisecond)

	// An invalid level must not reach the callback.
	if err := os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case rs := <-changes:
		t.Fatalf("invalid config was applied: %+v", rs)
	case <-time.After(1 * time.Second):
	}
}

func TestConfigWatcher_NoPathIsANoop(t *testing.T) {
	w := NewConfigWatcher("", func(RuntimeSettings) {
		t.Errorf("callback ran for empty path")
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// Must return promptly rather than block.
	w.Run(ctx)
}
