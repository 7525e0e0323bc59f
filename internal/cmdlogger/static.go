package cmdlogger

import "log/slog"

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError], assuming the logger is a [CmdLogger].
//
// If the logger is not a [CmdLogger], this will always return false.
func HasErrored() bool {
	l, ok := slog.Default().Handler().(CmdLogger)

	if ok {
		return l.HasErrored()
	}

	return false
}

// HasErroredBecauseInvalidConfig reports whether a config file was rejected,
// assuming the logger is a [CmdLogger].
func HasErroredBecauseInvalidConfig() bool {
	l, ok := slog.Default().Handler().(CmdLogger)

	if ok {
		return l.HasErroredBecauseInvalidConfig()
	}

	return false
}

func SetLevel(level slog.Leveler) {
	l, ok := slog.Default().Handler().(CmdLogger)

	if ok {
		l.SetLevel(level)
	}
}
