package main

import (
	"io"
	"os"

	"github.com/quickbom/quickbom/cmd/quickbom/detect"
	"github.com/quickbom/quickbom/cmd/quickbom/integrate"
	"github.com/quickbom/quickbom/cmd/quickbom/internal/cmd"
	"github.com/quickbom/quickbom/cmd/quickbom/serve"
)

func run(args []string, stdout, stderr io.Writer) int {
	return cmd.Run(args, stdout, stderr, []cmd.CommandBuilder{
		integrate.Command,
		detect.Command,
		serve.Command,
	})
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
