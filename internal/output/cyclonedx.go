// Package output renders unified SBOM documents and their summaries.
package output

import (
	"io"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/quickbom/quickbom/pkg/models"
)

const defaultToolType = cyclonedx.ComponentTypeApplication

// ToCycloneDX converts a unified document into its CycloneDX form. Optional
// component fields are left unset when empty so that they are omitted from
// the serialized document.
func ToCycloneDX(unified *models.UnifiedSBOM) *cyclonedx.BOM {
	bom := &cyclonedx.BOM{
		BOMFormat:    unified.BOMFormat,
		SpecVersion:  cyclonedx.SpecVersion1_6,
		SerialNumber: unified.SerialNumber,
		Version:      unified.Version,
		Metadata:     buildMetadata(unified.Metadata),
	}

	components := make([]cyclonedx.Component, 0, len(unified.Components))
	for _, c := range unified.Components {
		components = append(components, buildComponent(c))
	}
	bom.Components = &components

	dependencies := make([]cyclonedx.Dependency, 0, len(unified.Dependencies))
	for _, d := range unified.Dependencies {
		dependsOn := make([]string, len(d.DependsOn))
		copy(dependsOn, d.DependsOn)

		dependencies = append(dependencies, cyclonedx.Dependency{
			Ref:          d.Ref,
			Dependencies: &dependsOn,
		})
	}
	bom.Dependencies = &dependencies

	return bom
}

// PrintCycloneDX writes the unified document to w as indented JSON.
func PrintCycloneDX(w io.Writer, unified *models.UnifiedSBOM) error {
	encoder := cyclonedx.NewBOMEncoder(w, cyclonedx.BOMFileFormatJSON)
	encoder.SetPretty(true)

	return encoder.Encode(ToCycloneDX(unified))
}

func buildMetadata(metadata *models.Metadata) *cyclonedx.Metadata {
	if metadata == nil {
		return nil
	}

	result := &cyclonedx.Metadata{
		Timestamp: metadata.Timestamp,
		Authors:   buildContacts(metadata.Authors),
	}

	tools := make([]cyclonedx.Component, 0, len(metadata.Tools))
	for _, tool := range metadata.Tools {
		toolType := cyclonedx.ComponentType(tool.Type)
		if toolType == "" {
			toolType = defaultToolType
		}

		tools = append(tools, cyclonedx.Component{
			Type:    toolType,
			Author:  tool.Author,
			Name:    tool.Name,
			Version: tool.Version,
		})
	}
	result.Tools = &cyclonedx.ToolsChoice{Components: &tools}

	if main := metadata.Component; main != nil {
		result.Component = &cyclonedx.Component{
			BOMRef:     main.BOMRef,
			Type:       cyclonedx.ComponentType(main.Type),
			Group:      main.Group,
			Name:       main.Name,
			Version:    main.Version,
			PackageURL: main.PURL,
		}
	}

	return result
}

func buildComponent(c models.Component) cyclonedx.Component {
	component := cyclonedx.Component{
		BOMRef:      c.BOMRef,
		Type:        cyclonedx.ComponentType(c.Type),
		Group:       c.Group,
		Name:        c.Name,
		Version:     c.Version,
		Description: c.Description,
		CPE:         c.CPE,
		PackageURL:  c.PURL,
		Authors:     buildContacts(c.Authors),
	}

	if len(c.Hashes) > 0 {
		hashes := make([]cyclonedx.Hash, 0, len(c.Hashes))
		for _, h := range c.Hashes {
			hashes = append(hashes, cyclonedx.Hash{
				Algorithm: cyclonedx.HashAlgorithm(h.Algorithm),
				Value:     h.Content,
			})
		}
		component.Hashes = &hashes
	}

	if len(c.Licenses) > 0 {
		licenses := make(cyclonedx.Licenses, 0, len(c.Licenses))
		for _, l := range c.Licenses {
			licenses = append(licenses, buildLicense(l))
		}
		component.Licenses = &licenses
	}

	if len(c.Properties) > 0 {
		properties := make([]cyclonedx.Property, 0, len(c.Properties))
		for _, p := range c.Properties {
			properties = append(properties, cyclonedx.Property{Name: p.Name, Value: p.Value})
		}
		component.Properties = &properties
	}

	return component
}

// buildLicense keeps the license object when an id or name is known and
// falls back to the expression otherwise.
func buildLicense(l models.License) cyclonedx.LicenseChoice {
	if l.ID == "" && l.Name == "" {
		return cyclonedx.LicenseChoice{Expression: l.Expression}
	}

	return cyclonedx.LicenseChoice{
		License: &cyclonedx.License{
			ID:   l.ID,
			Name: l.Name,
		},
	}
}

func buildContacts(authors []models.Author) *[]cyclonedx.OrganizationalContact {
	if len(authors) == 0 {
		return nil
	}

	contacts := make([]cyclonedx.OrganizationalContact, 0, len(authors))
	for _, a := range authors {
		contacts = append(contacts, cyclonedx.OrganizationalContact{
			Name:  a.Name,
			Email: a.Email,
		})
	}

	return &contacts
}
