package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/package-url/packageurl-go"
	"github.com/quickbom/quickbom/pkg/models"
)

const unknownEcosystem = "unknown"

// SummaryFormats lists the formats PrintSummary can render.
var SummaryFormats = []string{"table", "json", "yaml"}

// Summarize counts the components of the unified document by provenance.
// A component is counted under every source_tool value it carries.
func Summarize(unified *models.UnifiedSBOM) models.Summary {
	summary := models.Summary{
		BOMFormat:         unified.BOMFormat,
		SpecVersion:       unified.SpecVersion,
		SerialNumber:      unified.SerialNumber,
		TotalComponents:   len(unified.Components),
		TotalDependencies: len(unified.Dependencies),
		Ecosystems:        make(map[string]int),
	}

	if unified.Metadata != nil {
		summary.Timestamp = unified.Metadata.Timestamp

		if unified.Metadata.Component != nil {
			name := unified.Metadata.Component.Name
			summary.MetadataComponent = &name
		}
	}

	for _, c := range unified.Components {
		sources := c.Properties.Values(models.PropertySourceTool)

		if slices.Contains(sources, models.FormatSyft.String()) {
			summary.ComponentsFromSyft++
		}
		if slices.Contains(sources, models.FormatHatbom.String()) {
			summary.ComponentsFromHatbom++
		}
		if c.Properties.Contains(models.PropertyIntegratedWith) {
			summary.IntegratedComponents++
		}

		summary.Ecosystems[ecosystem(c.PURL)]++
	}

	return summary
}

func ecosystem(purl string) string {
	if purl == "" {
		return unknownEcosystem
	}

	parsed, err := packageurl.FromString(purl)
	if err != nil || parsed.Type == "" {
		return unknownEcosystem
	}

	return parsed.Type
}

// PrintSummary writes the summary in the given format. A positive
// terminalWidth enables the decorated table style.
func PrintSummary(w io.Writer, summary models.Summary, format string, terminalWidth int) error {
	switch format {
	case "table":
		printSummaryTable(w, summary, terminalWidth)

		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(summary)
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}
		_, err = w.Write(out)

		return err
	}

	return fmt.Errorf("%v is not a valid summary format", format)
}

func printSummaryTable(w io.Writer, summary models.Summary, terminalWidth int) {
	if terminalWidth <= 0 {
		text.DisableColors()
	}

	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	mainComponent := ""
	if summary.MetadataComponent != nil {
		mainComponent = *summary.MetadataComponent
	}

	outputTable.AppendHeader(table.Row{"Field", "Value"})
	outputTable.AppendRows([]table.Row{
		{"BOM format", summary.BOMFormat + " " + summary.SpecVersion},
		{"Serial number", summary.SerialNumber},
		{"Timestamp", summary.Timestamp},
		{"Main component", mainComponent},
		{"Total components", strconv.Itoa(summary.TotalComponents)},
		{"Total dependencies", strconv.Itoa(summary.TotalDependencies)},
		{"Components from Syft", strconv.Itoa(summary.ComponentsFromSyft)},
		{"Components from Hatbom", strconv.Itoa(summary.ComponentsFromHatbom)},
		{"Integrated components", strconv.Itoa(summary.IntegratedComponents)},
	})

	ecosystems := make([]string, 0, len(summary.Ecosystems))
	for name := range summary.Ecosystems {
		ecosystems = append(ecosystems, name)
	}
	slices.Sort(ecosystems)

	if len(ecosystems) > 0 {
		outputTable.AppendSeparator()
		for _, name := range ecosystems {
			outputTable.AppendRow(table.Row{"Ecosystem: " + name, strconv.Itoa(summary.Ecosystems[name])})
		}
	}

	outputTable.Render()
}
