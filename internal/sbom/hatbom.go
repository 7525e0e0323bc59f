package sbom

import (
	"github.com/quickbom/quickbom/pkg/models"
)

// Hatbom reads file/hash-centric documents. Hatbom components carry hashes but
// no license or author data, and Hatbom is the only source of the dependency
// graph.
type Hatbom struct{}

func (h *Hatbom) Name() string {
	return "Hatbom"
}

func (h *Hatbom) Format() models.Format {
	return models.FormatHatbom
}

func (h *Hatbom) Read(data []byte) (*models.SourceDocument, error) {
	return Parse(data, models.FormatHatbom)
}

// ParseHatbom is Parse for a document expected to be a Hatbom document.
func ParseHatbom(data []byte) (*models.SourceDocument, error) {
	return Parse(data, models.FormatHatbom)
}

func normalizeHatbom(raw *rawDocument) *models.SourceDocument {
	doc := normalizeEnvelope(raw, models.FormatHatbom)

	doc.Components = make([]models.Component, 0, len(raw.Components))
	for _, c := range raw.Components {
		component := models.Component{
			Name:    valueOr(c.Name, models.UnknownValue),
			Version: valueOr(c.Version, models.UnknownValue),
			Type:    valueOr(c.Type, models.UnknownValue),
			BOMRef:  valueOrEmpty(c.BOMRef),
			PURL:    valueOrEmpty(c.PURL),
			Group:   valueOrEmpty(c.Group),
			Hashes:  normalizeHashes(c.Hashes),
		}
		inspectPURL(component)

		doc.Components = append(doc.Components, component)
	}

	return doc
}
