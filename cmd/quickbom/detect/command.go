// Package detect implements the detect command, which reports the tool that
// produced each given SBOM file.
package detect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/quickbom/quickbom/cmd/quickbom/internal/helper"
	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/sbom"
	"github.com/quickbom/quickbom/pkg/models"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var errNoFiles = errors.New("no SBOM files given, --help for usage information")

func Command(stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "reports whether each SBOM file was produced by Hatbom or Syft",
		ArgsUsage: "<file> [<file>...]",
		Flags:     helper.BuildCommonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

type detection struct {
	path       string
	format     models.Format
	components int
	err        error
}

func action(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errNoFiles
	}

	results := make([]detection, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = detectFile(path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.path, r.err))
			continue
		}

		cmdlogger.Debugf("%s has %d components", r.path, r.components)
		fmt.Fprintf(stdout, "%s: %s\n", r.path, r.format)
	}

	return errors.Join(errs...)
}

// detectFile never logs, as it runs outside of the command's goroutine.
func detectFile(path string) detection {
	data, err := os.ReadFile(path)
	if err != nil {
		return detection{path: path, err: err}
	}

	doc, err := sbom.ParseAny(data)
	if err != nil {
		return detection{path: path, err: err}
	}

	return detection{path: path, format: doc.Format, components: len(doc.Components)}
}
