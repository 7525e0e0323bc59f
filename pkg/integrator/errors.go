package integrator

import (
	"errors"

	"github.com/quickbom/quickbom/internal/sbom"
)

var (
	// ErrDecode is returned when an input is not syntactically valid JSON.
	ErrDecode = sbom.ErrDecode
	// ErrSchemaMismatch is returned when an input is valid JSON but is not
	// shaped like the document it was given as.
	ErrSchemaMismatch = sbom.ErrSchemaMismatch
	// ErrIntegration is returned for any fault while merging or exporting.
	// No partial result is returned alongside it.
	ErrIntegration = errors.New("integration failed")
)
