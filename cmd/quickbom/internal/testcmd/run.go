package testcmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quickbom/quickbom/cmd/quickbom/internal/cmd"
	"github.com/urfave/cli/v3"
)

// CommandsUnderTest should be set in TestMain by every cmd package test
var CommandsUnderTest []cmd.CommandBuilder

// fetchCommandsToTest returns the commands that should be tested, ensuring that
// the default "integrate" command is included to avoid a panic
func fetchCommandsToTest() []cmd.CommandBuilder {
	for _, builder := range CommandsUnderTest {
		command := builder(nil, nil)

		if command.Name == "integrate" {
			return CommandsUnderTest
		}
	}

	return append(CommandsUnderTest, func(_, _ io.Writer) *cli.Command {
		return &cli.Command{
			Name: "integrate",
			Action: func(_ context.Context, _ *cli.Command) error {
				return errors.New("<this test is unexpectedly calling the default integrate command>")
			},
		}
	})
}

// Run runs the command line of tc, checks its exit code and returns what was
// written to stdout and stderr.
func Run(t *testing.T, tc Case) (string, string) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	ec := cmd.Run(tc.Args, stdout, stderr, fetchCommandsToTest())

	if ec != tc.Exit {
		t.Errorf("cli exited with code %d, not %d\nstdout:\n%s\nstderr:\n%s", ec, tc.Exit, stdout, stderr)
	}

	return stdout.String(), stderr.String()
}
