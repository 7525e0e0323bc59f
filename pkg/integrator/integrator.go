// Package integrator reconciles a Hatbom and a Syft SBOM into a single
// CycloneDX document.
//
// Every call works on its own state, so independent integrations may run
// concurrently.
package integrator

import (
	"bytes"
	"fmt"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/output"
	"github.com/quickbom/quickbom/internal/sbom"
	"github.com/quickbom/quickbom/pkg/models"
)

// Result is the outcome of a successful integration.
type Result struct {
	// SBOM is the unified document. It must not be modified.
	SBOM *models.UnifiedSBOM
	// Document is SBOM serialized as indented CycloneDX JSON.
	Document []byte
	Summary  models.Summary
	// Filename is the suggested name of the file holding Document.
	Filename string
}

// Integrate parses both raw documents and merges them. Decode and schema
// errors of either input fail the whole integration.
func Integrate(hatbomJSON, syftJSON []byte, opts Options) (*Result, error) {
	hatbom, err := sbom.ParseHatbom(hatbomJSON)
	if err != nil {
		return nil, err
	}

	syft, err := sbom.ParseSyft(syftJSON)
	if err != nil {
		return nil, err
	}

	return IntegrateDocuments(hatbom, syft, opts)
}

// IntegrateAuto is Integrate for two documents given in any order; each is
// classified with sbom.Detect. Exactly one Hatbom and one Syft document are
// required.
func IntegrateAuto(first, second []byte, opts Options) (*Result, error) {
	a, err := sbom.ParseAny(first)
	if err != nil {
		return nil, err
	}

	b, err := sbom.ParseAny(second)
	if err != nil {
		return nil, err
	}

	if a.Format == b.Format {
		return nil, &sbom.ParseError{
			Kind:   ErrSchemaMismatch,
			Format: a.Format,
			Err:    fmt.Errorf("both documents were detected as %s, expected one Hatbom and one Syft document", a.Format),
		}
	}

	if a.Format == models.FormatSyft {
		a, b = b, a
	}

	cmdlogger.Debugf("Detected Hatbom document %s and Syft document %s", a.SerialNumber, b.SerialNumber)

	return IntegrateDocuments(a, b, opts)
}

// IntegrateDocuments merges two normalized documents and exports the result.
func IntegrateDocuments(hatbom, syft *models.SourceDocument, opts Options) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrIntegration, r)
		}
	}()

	unified := Merge(hatbom, syft, opts)

	var buf bytes.Buffer
	if err := output.PrintCycloneDX(&buf, unified); err != nil {
		return nil, fmt.Errorf("%w: failed to export unified SBOM: %w", ErrIntegration, err)
	}

	return &Result{
		SBOM:     unified,
		Document: buf.Bytes(),
		Summary:  output.Summarize(unified),
		Filename: output.Filename(unified),
	}, nil
}
