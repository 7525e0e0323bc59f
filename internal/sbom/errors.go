package sbom

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quickbom/quickbom/pkg/models"
)

var (
	// ErrDecode is returned when a document is not syntactically valid JSON.
	ErrDecode = errors.New("document is not valid JSON")
	// ErrSchemaMismatch is returned when a document is valid JSON but lacks
	// the shape required for its format.
	ErrSchemaMismatch = errors.New("document does not match the expected schema")
)

var (
	errNotObject       = errors.New("top-level value is not a JSON object")
	errMissingMetadata = errors.New("required \"metadata\" object is missing")
)

// ParseError reports why a source document could not be normalized. Kind is
// one of ErrDecode or ErrSchemaMismatch, so callers can tell the two apart
// with errors.Is.
type ParseError struct {
	Kind   error
	Format models.Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s %v: %v", e.Format, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func errNotFormat(expected, detected models.Format) error {
	if expected == models.FormatSyft {
		return fmt.Errorf("expected a %s document but found %s: no CycloneDX \"$schema\" together with a \"syft\" tool entry", expected, detected)
	}

	return fmt.Errorf("expected a %s document but found %s", expected, detected)
}

func errUnsupportedFormat(format models.Format) error {
	return fmt.Errorf("unsupported format %q", format)
}

// classifyDecodeError maps an encoding/json error onto the error kinds: only
// syntax errors are decode failures, everything else means the JSON was well
// formed but shaped differently than expected.
func classifyDecodeError(format models.Format, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Kind: ErrDecode, Format: format, Err: err}
	}

	return &ParseError{Kind: ErrSchemaMismatch, Format: format, Err: err}
}
