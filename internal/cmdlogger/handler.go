package cmdlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// invalidConfigPrefix marks error records emitted when a config file is
// rejected, so the CLI can report a dedicated exit code.
const invalidConfigPrefix = "Ignored invalid config file"

// Handler writes plain messages, one per line: errors to stderr and everything
// else to stdout. It remembers whether any error was logged.
type Handler struct {
	mu sync.Mutex

	stdout             io.Writer
	stderr             io.Writer
	hasErrored         bool
	everythingToStderr bool
	Level              slog.Leveler

	hasErroredBecauseInvalidConfig bool
}

// SendEverythingToStderr tells the logger to send all logs to stderr regardless
// of their level.
//
// Used when stdout carries a machine readable document, such as the unified
// SBOM or a JSON summary.
func (c *Handler) SendEverythingToStderr() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.everythingToStderr = true
}

func (c *Handler) SetLevel(level slog.Leveler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Level = level
}

func (c *Handler) writer(level slog.Level) io.Writer {
	if c.everythingToStderr || level >= slog.LevelError {
		return c.stderr
	}

	return c.stdout
}

func (c *Handler) Enabled(_ context.Context, level slog.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// errors are always enabled so that HasErrored is accurate
	if level >= slog.LevelError {
		return true
	}

	return level >= c.Level.Level()
}

func (c *Handler) Handle(_ context.Context, record slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record.Level >= slog.LevelError {
		c.hasErrored = true

		if strings.HasPrefix(record.Message, invalidConfigPrefix) {
			c.hasErroredBecauseInvalidConfig = true
		}
	}

	_, err := fmt.Fprint(c.writer(record.Level), record.Message+"\n")

	return err
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError]
func (c *Handler) HasErrored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErrored
}

// HasErroredBecauseInvalidConfig returns true if an error was logged because
// a config file could not be loaded
func (c *Handler) HasErroredBecauseInvalidConfig() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErroredBecauseInvalidConfig
}

func (c *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (c *Handler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}

var _ CmdLogger = &Handler{}

func New(stdout, stderr io.Writer) CmdLogger {
	return &Handler{
		stdout: stdout,
		stderr: stderr,
		Level:  slog.LevelInfo,
	}
}
