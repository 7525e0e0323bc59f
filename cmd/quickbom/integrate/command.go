// Package integrate implements the default quickbom command, which merges a
// Hatbom and a Syft SBOM into a unified CycloneDX document on disk.
package integrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/quickbom/quickbom/cmd/quickbom/internal/helper"
	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/output"
	"github.com/quickbom/quickbom/pkg/integrator"
	"github.com/urfave/cli/v3"
)

func Command(stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "integrate",
		Usage:       "merges a Hatbom and a Syft SBOM into a single CycloneDX document",
		Description: "merges a Hatbom and a Syft SBOM into a single CycloneDX document, recording which tool each component came from.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:      "hatbom",
				Usage:     "path to the Hatbom SBOM",
				TakesFile: true,
				Required:  true,
			},
			&cli.StringFlag{
				Name:      "syft",
				Usage:     "path to the Syft CycloneDX SBOM",
				TakesFile: true,
				Required:  true,
			},
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "saves the unified SBOM to the given file path",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "output-dir",
				Usage:     "saves the unified SBOM to this directory, named after its main component; defaults to the configured output directory",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "summary-format",
				Usage: "sets the summary format; value can be: " + strings.Join(output.SummaryFormats, ", "),
				Value: "table",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if slices.Contains(output.SummaryFormats, s) {
						return nil
					}

					return fmt.Errorf("unsupported summary format \"%s\" - must be one of: %s", s, strings.Join(output.SummaryFormats, ", "))
				},
			},
		}, helper.BuildCommonFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

func action(_ context.Context, cmd *cli.Command, stdout io.Writer) error {
	hatbomPath := cmd.String("hatbom")
	syftPath := cmd.String("syft")
	format := cmd.String("summary-format")

	if format != "table" {
		cmdlogger.SendEverythingToStderr()
	}

	cfg, err := helper.LoadConfig(cmd.String("config"), hatbomPath)
	if err != nil {
		return err
	}

	hatbomJSON, err := os.ReadFile(hatbomPath)
	if err != nil {
		return fmt.Errorf("failed to read Hatbom SBOM: %w", err)
	}

	syftJSON, err := os.ReadFile(syftPath)
	if err != nil {
		return fmt.Errorf("failed to read Syft SBOM: %w", err)
	}

	result, err := integrator.Integrate(hatbomJSON, syftJSON, integrator.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	cmdlogger.Infof(
		"Integrated %d components from %s and %s",
		result.Summary.TotalComponents,
		filepath.Base(hatbomPath),
		filepath.Base(syftPath),
	)

	outputPath := cmd.String("output")
	if outputPath == "" {
		dir := cmd.String("output-dir")
		if dir == "" {
			dir = cfg.Output.Directory
		}
		outputPath = filepath.Join(dir, result.Filename)
	}

	if _, err := output.SaveToFile(outputPath, result.SBOM); err != nil {
		return err
	}

	return output.PrintSummary(stdout, result.Summary, format, helper.TerminalWidth(stdout))
}
