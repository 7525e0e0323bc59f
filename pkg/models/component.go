package models

// Hash is a content-addressed digest of a component. Neither the algorithm
// nor the content is validated.
type Hash struct {
	Algorithm string
	Content   string
}

// License is a single license entry of a component.
type License struct {
	ID         string
	Name       string
	Expression string
}

// Display returns the preferred textual form of the license: the SPDX id,
// then the name, then the expression, and "N/A" when none is set.
func (l License) Display() string {
	switch {
	case l.ID != "":
		return l.ID
	case l.Name != "":
		return l.Name
	case l.Expression != "":
		return l.Expression
	default:
		return NotAvailableLicense
	}
}

// Author is a person or organisation credited for a component or document.
// Either field may be empty, but never both.
type Author struct {
	Name  string
	Email string
}

func (a Author) IsEmpty() bool {
	return a.Name == "" && a.Email == ""
}

// Component is the unit being deduplicated across source documents.
type Component struct {
	Name        string
	Version     string
	Type        string
	BOMRef      string
	PURL        string
	Group       string
	CPE         string
	Description string

	Hashes     []Hash
	Licenses   []License
	Properties Properties
	Authors    []Author
}

// Clone returns a deep copy of the component so that later mutation of the
// copy never reaches the source document it was taken from.
func (c Component) Clone() Component {
	c.Hashes = append([]Hash(nil), c.Hashes...)
	c.Licenses = append([]License(nil), c.Licenses...)
	c.Properties = append(Properties(nil), c.Properties...)
	c.Authors = append([]Author(nil), c.Authors...)

	return c
}

// Dependency is an edge list of the dependency graph.
type Dependency struct {
	Ref       string
	DependsOn []string
}

// Tool describes the program that produced a document.
type Tool struct {
	Type    string
	Author  string
	Name    string
	Version string
}

// MainComponent describes the subject of an SBOM document.
type MainComponent struct {
	Name    string
	Type    string
	BOMRef  string
	Version string
	Group   string
	PURL    string
}
