package models

// Summary is the provenance report of a unified document.
type Summary struct {
	BOMFormat            string  `json:"bom_format" yaml:"bom_format"`
	SpecVersion          string  `json:"spec_version" yaml:"spec_version"`
	SerialNumber         string  `json:"serial_number" yaml:"serial_number"`
	Timestamp            string  `json:"timestamp" yaml:"timestamp"`
	TotalComponents      int     `json:"total_components" yaml:"total_components"`
	TotalDependencies    int     `json:"total_dependencies" yaml:"total_dependencies"`
	ComponentsFromSyft   int     `json:"components_from_syft" yaml:"components_from_syft"`
	ComponentsFromHatbom int     `json:"components_from_hatbom" yaml:"components_from_hatbom"`
	IntegratedComponents int     `json:"integrated_components" yaml:"integrated_components"`
	MetadataComponent    *string `json:"metadata_component" yaml:"metadata_component"`

	// Ecosystems counts components per package URL type; components without a
	// parsable purl are counted as "unknown".
	Ecosystems map[string]int `json:"ecosystems" yaml:"ecosystems"`
}
