package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/testlogger"
	"github.com/quickbom/quickbom/internal/version"
	"github.com/quickbom/quickbom/pkg/integrator"
	"github.com/urfave/cli/v3"
)

var (
	commit = "n/a"
	date   = "n/a"
)

// Exit codes returned by Run.
const (
	ExitOK                = 0
	ExitOtherError        = 127
	ExitDecodeError       = 128
	ExitSchemaMismatch    = 129
	ExitInvalidConfigFile = 130
)

type CommandBuilder = func(stdout, stderr io.Writer) *cli.Command

func Run(args []string, stdout, stderr io.Writer, commands []CommandBuilder) int {
	// urfave/cli uses a global for its help flag which makes it possible for a nil
	// pointer dereference if running in a parallel setting, which our test suite
	// does, so this is used to hide the help flag so the global won't be used
	// unless a particular env variable is set
	//
	// see https://github.com/urfave/cli/issues/2176
	shouldHideHelp := testing.Testing() && os.Getenv("TEST_SHOW_HELP") != "true"

	logHandler := cmdlogger.New(stdout, stderr)

	if testing.Testing() {
		handler, ok := slog.Default().Handler().(*testlogger.Handler)
		if !ok {
			panic("Test failed to initialize default logger with Handler")
		}

		handler.AddInstance(logHandler)
		defer handler.Delete()
	} else {
		slog.SetDefault(slog.New(logHandler))
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		cmdlogger.Infof("quickbom version: %s", cmd.Version)
		cmdlogger.Infof("integrator version: %s", version.IntegratorVersion)
		cmdlogger.Infof("commit: %s", commit)
		cmdlogger.Infof("built at: %s", date)
	}

	cmds := make([]*cli.Command, 0, len(commands))
	for _, cmd := range commands {
		c := cmd(stdout, stderr)
		c.HideHelp = shouldHideHelp

		cmds = append(cmds, c)
	}

	app := &cli.Command{
		Name:           "quickbom",
		Version:        version.QuickBOMVersion,
		Usage:          "integrates a Hatbom and a Syft SBOM into a single CycloneDX document",
		Suggest:        true,
		HideHelp:       shouldHideHelp,
		Writer:         stdout,
		ErrWriter:      stderr,
		DefaultCommand: "integrate",
		Commands:       cmds,

		CustomRootCommandHelpTemplate: getCustomHelpTemplate(),
	}

	// Without this, cli would exit the process itself for any error that
	// happens to implement cli.ExitCoder, skipping the exit code mapping below.
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	args = insertDefaultCommand(args, app.Commands, app.DefaultCommand, stderr)

	err := app.Run(context.Background(), args)

	// if the config is invalid, it's possible that is why any other errors
	// happened so that exit code takes priority
	if logHandler.HasErroredBecauseInvalidConfig() {
		return ExitInvalidConfigFile
	}

	if err != nil {
		cmdlogger.Errorf("%v", err)

		switch {
		case errors.Is(err, integrator.ErrDecode):
			return ExitDecodeError
		case errors.Is(err, integrator.ErrSchemaMismatch):
			return ExitSchemaMismatch
		}
	}

	// if we've been told to print an error, and not already exited with
	// a specific error code, then exit with a generic non-zero code
	if logHandler.HasErrored() {
		return ExitOtherError
	}

	return ExitOK
}
