// Package sbom detects and normalizes the two SBOM dialects quickbom
// integrates: file/hash-centric Hatbom documents and package/license-centric
// Syft CycloneDX documents.
package sbom

import (
	"github.com/quickbom/quickbom/pkg/models"
)

// Reader is implemented by every supported source dialect.
type Reader interface {
	Name() string
	Format() models.Format
	// Read decodes and normalizes a raw JSON document. The document must be
	// classified as this reader's format by Detect.
	Read(data []byte) (*models.SourceDocument, error)
}

var (
	Providers = []Reader{
		&Syft{},
		&Hatbom{},
	}
)

// ReaderFor returns the reader handling the given format.
func ReaderFor(format models.Format) Reader {
	for _, provider := range Providers {
		if provider.Format() == format {
			return provider
		}
	}

	return nil
}

// ParseAny detects the format of the document and normalizes it with the
// matching reader.
func ParseAny(data []byte) (*models.SourceDocument, error) {
	raw, err := decode(data, "")
	if err != nil {
		return nil, err
	}

	return normalize(raw, DetectResult(raw.root))
}

// Parse normalizes a document that is expected to be of the given format.
// A document that decodes but is classified as another format is reported as
// a schema mismatch.
func Parse(data []byte, expected models.Format) (*models.SourceDocument, error) {
	raw, err := decode(data, expected)
	if err != nil {
		return nil, err
	}

	if detected := DetectResult(raw.root); detected != expected {
		return nil, &ParseError{
			Kind:   ErrSchemaMismatch,
			Format: expected,
			Err:    errNotFormat(expected, detected),
		}
	}

	return normalize(raw, expected)
}

func normalize(raw *rawDocument, format models.Format) (*models.SourceDocument, error) {
	switch format {
	case models.FormatSyft:
		return normalizeSyft(raw), nil
	case models.FormatHatbom:
		if raw.Metadata == nil {
			return nil, &ParseError{Kind: ErrSchemaMismatch, Format: format, Err: errMissingMetadata}
		}

		return normalizeHatbom(raw), nil
	}

	return nil, &ParseError{Kind: ErrSchemaMismatch, Format: format, Err: errUnsupportedFormat(format)}
}
