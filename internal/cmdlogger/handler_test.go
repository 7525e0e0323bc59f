package cmdlogger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/quickbom/quickbom/internal/cmdlogger"
)

func TestHandler_RoutesByLevel(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SetLevel(slog.LevelDebug)
	logger := slog.New(handler)

	logger.Debug("looking")
	logger.Info("found")
	logger.Error("broken")

	if got, want := stdout.String(), "looking\nfound\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := stderr.String(), "broken\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if !handler.HasErrored() {
		t.Error("expected handler to have errored")
	}
	if handler.HasErroredBecauseInvalidConfig() {
		t.Error("did not expect an invalid config error")
	}
}

func TestHandler_LevelFiltersMessages(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	handler := cmdlogger.New(stdout, &bytes.Buffer{})
	handler.SetLevel(slog.LevelWarn)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("errors should always be enabled")
	}

	slog.New(handler).Info("hidden")

	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}
}

func TestHandler_SendEverythingToStderr(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SendEverythingToStderr()

	slog.New(handler).Info("moved")

	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}
	if got, want := stderr.String(), "moved\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestHandler_InvalidConfig(t *testing.T) {
	t.Parallel()

	handler := cmdlogger.New(&bytes.Buffer{}, &bytes.Buffer{})

	slog.New(handler).Error("Ignored invalid config file at quickbom.toml because: boom")

	if !handler.HasErroredBecauseInvalidConfig() {
		t.Error("expected handler to report an invalid config")
	}
}
