package sbom

import (
	"github.com/package-url/packageurl-go"
	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/pkg/models"
)

// Syft reads CycloneDX documents produced by Syft. Syft components carry
// licenses, free-text authors and tool-specific properties.
type Syft struct{}

func (s *Syft) Name() string {
	return "Syft"
}

func (s *Syft) Format() models.Format {
	return models.FormatSyft
}

func (s *Syft) Read(data []byte) (*models.SourceDocument, error) {
	return Parse(data, models.FormatSyft)
}

// ParseSyft is Parse for a document expected to be a Syft document.
func ParseSyft(data []byte) (*models.SourceDocument, error) {
	return Parse(data, models.FormatSyft)
}

func normalizeSyft(raw *rawDocument) *models.SourceDocument {
	doc := normalizeEnvelope(raw, models.FormatSyft)

	doc.Components = make([]models.Component, 0, len(raw.Components))
	for _, c := range raw.Components {
		component := models.Component{
			Name:        valueOr(c.Name, models.UnknownValue),
			Version:     valueOr(c.Version, models.UnknownValue),
			Type:        valueOr(c.Type, models.UnknownValue),
			BOMRef:      valueOrEmpty(c.BOMRef),
			PURL:        valueOrEmpty(c.PURL),
			Group:       valueOrEmpty(c.Group),
			CPE:         valueOrEmpty(c.CPE),
			Description: valueOrEmpty(c.Description),
			Hashes:      normalizeHashes(c.Hashes),
			Licenses:    normalizeLicenses(c.Licenses),
			Properties:  normalizeProperties(c.Properties),
			Authors:     ParseAuthors(valueOrEmpty(c.Author)),
		}
		inspectPURL(component)

		doc.Components = append(doc.Components, component)
	}

	return doc
}

func normalizeProperties(raw []rawProperty) models.Properties {
	props := make(models.Properties, 0, len(raw))
	for _, p := range raw {
		props = props.Add(valueOrEmpty(p.Name), valueOrEmpty(p.Value))
	}

	return props
}

// inspectPURL logs purls that do not parse. They are still used verbatim as
// identity keys.
func inspectPURL(c models.Component) {
	if c.PURL == "" {
		return
	}

	if _, err := packageurl.FromString(c.PURL); err != nil {
		cmdlogger.Debugf("Invalid PURL %q on component %s@%s: %v", c.PURL, c.Name, c.Version, err)
	}
}
