// Package models provides the data models shared by the quickbom normalizers,
// the merge engine and the exporter.
package models

// Format identifies which tool produced a source SBOM document.
type Format string

const (
	FormatHatbom Format = "Hatbom"
	FormatSyft   Format = "Syft"
)

func (f Format) String() string {
	return string(f)
}

// Property names used as the provenance channel on unified components.
const (
	PropertySourceTool     = "source_tool"
	PropertyIntegratedWith = "integrated_with"
)

const (
	// UnknownValue is used for component names, versions, types and tool
	// fields that are absent from a source document.
	UnknownValue = "Unknown"
	// NotAvailableLicense is the license name recorded for a license entry
	// carrying none of id, name or expression.
	NotAvailableLicense = "N/A"
	// DefaultMainComponentType is used when neither source names a type for
	// the document's main component.
	DefaultMainComponentType = "application"
)

// Fixed identity of every unified document.
const (
	UnifiedBOMFormat   = "CycloneDX"
	UnifiedSpecVersion = "1.6"
	UnifiedVersion     = 1
)
