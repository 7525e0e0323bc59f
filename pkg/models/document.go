package models

// SourceMetadata is the normalized metadata block of a source document.
type SourceMetadata struct {
	Timestamp string
	Authors   []Author
	Tools     []Tool
	Component MainComponent
}

// FirstTool returns the first reporting tool of the document, regardless of
// which historical shape the tools were declared in.
func (m SourceMetadata) FirstTool() (Tool, bool) {
	if len(m.Tools) == 0 {
		return Tool{}, false
	}

	return m.Tools[0], true
}

// SourceDocument is the normalized form of a Hatbom or Syft document.
type SourceDocument struct {
	Format       Format
	Schema       string
	BOMFormat    string
	SpecVersion  string
	SerialNumber string
	Version      int

	Metadata     SourceMetadata
	Components   []Component
	Dependencies []Dependency
}

// Metadata is the metadata block of a unified document.
type Metadata struct {
	Timestamp string
	Authors   []Author
	Tools     []Tool
	Component *MainComponent
}

// UnifiedSBOM is the reconciled document produced by the merge engine. It is
// fully populated by a single integration and not modified afterwards.
type UnifiedSBOM struct {
	BOMFormat    string
	SpecVersion  string
	SerialNumber string
	Version      int

	Metadata     *Metadata
	Components   []Component
	Dependencies []Dependency
}

// MainComponentName returns the name of the document's main component, or
// an empty string when there is none.
func (s *UnifiedSBOM) MainComponentName() string {
	if s == nil || s.Metadata == nil || s.Metadata.Component == nil {
		return ""
	}

	return s.Metadata.Component.Name
}
