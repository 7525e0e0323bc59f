// Package testlogger provides a slog handler that can be installed globally
// while t.Parallel() tests run, routing each record to the logger registered
// by the test that emitted it.
package testlogger

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/quickbom/quickbom/internal/cmdlogger"
)

// fallbackLogger receives records emitted outside of any test goroutine.
var fallbackLogger = cmdlogger.New(io.Discard, io.Discard)

// mutedPrefixes lists messages whose content depends on input quirks rather
// than on the behavior under test.
var mutedPrefixes = []string{
	"Invalid PURL",
}

// Handler can be set as the global logging handler before the tests start;
// each test then registers its own cmdlogger.CmdLogger with AddInstance.
type Handler struct {
	loggers sync.Map // map[string]cmdlogger.CmdLogger
}

func (tl *Handler) current() cmdlogger.CmdLogger {
	key := callerInstance()

	if key == "" {
		return fallbackLogger
	}

	val, ok := tl.loggers.Load(key)
	if !ok {
		panic("logger not found: " + key)
	}

	return val.(cmdlogger.CmdLogger)
}

// AddInstance registers the logger for the calling test.
func (tl *Handler) AddInstance(logger cmdlogger.CmdLogger) {
	prev, _ := tl.loggers.Swap(callerInstance(), logger)
	if prev != nil {
		panic("same logger being added twice")
	}
}

// Delete removes the logger registered by AddInstance. It must be called
// before the test ends, as the runner address used as key can be reused.
func (tl *Handler) Delete() {
	tl.loggers.Delete(callerInstance())
}

func (tl *Handler) SendEverythingToStderr() {
	tl.current().SendEverythingToStderr()
}

func (tl *Handler) SetLevel(level slog.Leveler) {
	tl.current().SetLevel(level)
}

func (tl *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return tl.current().Enabled(ctx, level)
}

func (tl *Handler) Handle(ctx context.Context, record slog.Record) error {
	for _, prefix := range mutedPrefixes {
		if strings.HasPrefix(record.Message, prefix) {
			return nil
		}
	}

	l := tl.current()
	if l == fallbackLogger {
		// nothing should log from a background goroutine during tests; if it
		// does, the output would be lost
		panic("unrouted log message: " + record.Message)
	}

	return l.Handle(ctx, record)
}

func (tl *Handler) HasErrored() bool {
	return tl.current().HasErrored()
}

func (tl *Handler) HasErroredBecauseInvalidConfig() bool {
	return tl.current().HasErroredBecauseInvalidConfig()
}

func (tl *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tl.current().WithAttrs(attrs)
}

func (tl *Handler) WithGroup(g string) slog.Handler {
	return tl.current().WithGroup(g)
}

var _ cmdlogger.CmdLogger = &Handler{}

func New() *Handler {
	return &Handler{}
}

// callerInstance returns the "testing.tRunner(0x..., 0x...)" frame of the
// current goroutine, which is unique for as long as the test runs. Goroutines
// started by the test itself have no such frame and yield "".
func callerInstance() string {
	sc := bufio.NewScanner(bytes.NewReader(debug.Stack()))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "testing.tRunner(") {
			return line
		}
		if strings.HasPrefix(line, "created by ") && strings.Contains(line, " in goroutine ") {
			return ""
		}
	}

	return ""
}
