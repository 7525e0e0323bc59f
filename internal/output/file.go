package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/pkg/models"
)

const (
	defaultFilename = "unified_sbom.json"
	filenameSuffix  = "_unified_sbom.json"
)

var unsafeFilenameChars = strings.NewReplacer("/", "_", ":", "_")

// Filename derives the output file name from the document's main component,
// e.g. "test/app:v1.0" becomes "test_app_v1.0_unified_sbom.json".
func Filename(unified *models.UnifiedSBOM) string {
	name := unified.MainComponentName()
	if name == "" {
		return defaultFilename
	}

	return unsafeFilenameChars.Replace(name) + filenameSuffix
}

// SaveToFile writes the unified document to path, creating any missing parent
// directories, and returns the absolute path of the written file.
func SaveToFile(path string, unified *models.UnifiedSBOM) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := PrintCycloneDX(f, unified); err != nil {
		return "", fmt.Errorf("failed to write unified SBOM: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	cmdlogger.Infof("Unified SBOM saved to %s", abs)

	return abs, nil
}
