// Package cmd provides the entry point shared by the quickbom CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/urfave/cli/v3"
)

func getCustomHelpTemplate() string {
	return `
NAME:
	{{.Name}} - {{.Usage}}

USAGE:
	{{.Name}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}}

EXAMPLES:
	# Integrate a Hatbom and a Syft SBOM into the current directory
	$ {{.Name}} integrate --hatbom <hatbom.json> --syft <syft.json>

	# Write the unified SBOM to a specific file and print a JSON summary
	$ {{.Name}} integrate --hatbom <hatbom.json> --syft <syft.json> --output unified.json --summary-format json

	# Tell which tool produced some SBOM files
	$ {{.Name}} detect <sbom.json> [<sbom.json>...]

	# Serve the integration API
	$ {{.Name}} serve --addr :8080

	For full usage details, please refer to the help command of each subcommand (e.g. {{.Name}} integrate --help).

VERSION:
	{{.Version}}

COMMANDS:
{{range .Commands}}{{if and (not .HideHelp) (not .Hidden)}}  {{join .Names ", "}}{{ "\t"}}{{.Usage}}{{ "\n" }}{{end}}{{end}}
{{if .VisibleFlags}}
GLOBAL OPTIONS:
	{{range .VisibleFlags}}  {{.}}{{end}}
{{end}}
`
}

// Gets all valid commands and global options for quickbom.
func getAllCommands(commands []*cli.Command) []string {
	allCommands := make([]string, 0)
	for _, command := range commands {
		allCommands = append(allCommands, command.Name)
	}

	// Adding help command and help flags
	for _, flag := range cli.HelpFlag.Names() {
		allCommands = append(allCommands, flag)      // help command
		allCommands = append(allCommands, "-"+flag)  // help flag
		allCommands = append(allCommands, "--"+flag) // help flag
	}

	// Adding version flags
	for _, flag := range cli.VersionFlag.Names() {
		allCommands = append(allCommands, "-"+flag)
		allCommands = append(allCommands, "--"+flag)
	}

	return allCommands
}

// warnIfCommandAmbiguous warns the user if the command they are trying to run
// exists as both a subcommand and as a file on the filesystem.
// If this is the case, the command is assumed to be a subcommand.
func warnIfCommandAmbiguous(command, defaultCommand string, stderr io.Writer) {
	if _, err := os.Stat(command); err == nil {
		fmt.Fprintf(stderr, "Warning: `%[1]s` exists as both a subcommand of quickbom and as a file on the filesystem. "+
			"`%[1]s` is assumed to be a subcommand here. If you intended for `%[1]s` to be an argument to `%[2]s`, "+
			"you must specify `%[2]s %[1]s` in your command line.\n", command, defaultCommand)
	}
}

// Inserts the default command to args if no command is specified.
func insertDefaultCommand(args []string, commands []*cli.Command, defaultCommand string, stderr io.Writer) []string {
	// Do nothing if no command or flag is provided.
	if len(args) < 2 {
		return args
	}

	command := args[1]
	if !slices.Contains(getAllCommands(commands), command) {
		// Avoids modifying args in-place, as some unit tests rely on its original value for multiple calls.
		argsTmp := make([]string, len(args)+1)
		copy(argsTmp[2:], args[1:])
		argsTmp[0] = args[0]
		argsTmp[1] = defaultCommand

		return argsTmp
	}

	warnIfCommandAmbiguous(command, defaultCommand, stderr)

	return args
}
