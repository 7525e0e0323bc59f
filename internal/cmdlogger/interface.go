package cmdlogger

import "log/slog"

// CmdLogger is the handler installed by the quickbom commands.
type CmdLogger interface {
	slog.Handler
	SendEverythingToStderr()
	HasErrored() bool
	HasErroredBecauseInvalidConfig() bool
	SetLevel(level slog.Leveler)
}

// SendEverythingToStderr tells the logger (if its in use) to send all logs
// to stderr regardless of their level.
func SendEverythingToStderr() {
	l, ok := slog.Default().Handler().(CmdLogger)

	if ok {
		l.SendEverythingToStderr()
	}
}
