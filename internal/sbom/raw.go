package sbom

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/quickbom/quickbom/pkg/models"
	"github.com/tidwall/gjson"
)

// The raw* types mirror the JSON wire shape of both dialects. Every field is
// optional; defaults are applied during normalization, never here.

type rawDocument struct {
	Schema       json.RawMessage `json:"$schema"`
	BOMFormat    *string         `json:"bomFormat"`
	SpecVersion  *string         `json:"specVersion"`
	SerialNumber *string         `json:"serialNumber"`
	Version      *int            `json:"version"`
	Metadata     *rawMetadata    `json:"metadata"`
	Components   []rawComponent  `json:"components"`
	Dependencies []rawDependency `json:"dependencies"`

	root gjson.Result
}

type rawMetadata struct {
	Timestamp *string           `json:"timestamp"`
	Authors   []rawAuthor       `json:"authors"`
	Tools     rawTools          `json:"tools"`
	Component *rawMainComponent `json:"component"`
}

type rawAuthor struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type rawTool struct {
	Type    *string `json:"type"`
	Author  *string `json:"author"`
	Vendor  *string `json:"vendor"`
	Name    *string `json:"name"`
	Version *string `json:"version"`
}

// rawTools accepts both historical shapes of metadata.tools: an object with a
// "components" array (CycloneDX 1.5+) or a bare array of tools (1.4 and
// earlier). Both decode to the same ordered list.
type rawTools []rawTool

func (t *rawTools) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = nil

		return nil
	}

	switch trimmed[0] {
	case '[':
		var tools []rawTool
		if err := json.Unmarshal(trimmed, &tools); err != nil {
			return err
		}
		*t = tools

		return nil
	case '{':
		var choice struct {
			Components []rawTool `json:"components"`
		}
		if err := json.Unmarshal(trimmed, &choice); err != nil {
			return err
		}
		*t = choice.Components

		return nil
	}

	return errors.New("metadata.tools must be an object or an array")
}

type rawMainComponent struct {
	Group   *string `json:"group"`
	Name    *string `json:"name"`
	Version *string `json:"version"`
	Type    *string `json:"type"`
	BOMRef  *string `json:"bom-ref"`
	PURL    *string `json:"purl"`
}

type rawComponent struct {
	BOMRef      *string            `json:"bom-ref"`
	Type        *string            `json:"type"`
	Group       *string            `json:"group"`
	Name        *string            `json:"name"`
	Version     *string            `json:"version"`
	Description *string            `json:"description"`
	CPE         *string            `json:"cpe"`
	PURL        *string            `json:"purl"`
	Author      *string            `json:"author"`
	Hashes      []rawHash          `json:"hashes"`
	Licenses    []rawLicenseChoice `json:"licenses"`
	Properties  []rawProperty      `json:"properties"`
}

type rawHash struct {
	Alg     *string `json:"alg"`
	Content *string `json:"content"`
}

type rawLicenseChoice struct {
	License *struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	} `json:"license"`
	Expression *string `json:"expression"`
}

type rawProperty struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

type rawDependency struct {
	Ref       *string  `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

// decode parses data into a rawDocument, distinguishing syntax errors from
// shape errors.
func decode(data []byte, format models.Format) (*rawDocument, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, classifyDecodeError(format, err)
	}

	raw.root = gjson.ParseBytes(data)
	if !raw.root.IsObject() {
		return nil, &ParseError{Kind: ErrSchemaMismatch, Format: format, Err: errNotObject}
	}

	return &raw, nil
}

func valueOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}

	return *p
}

func valueOrEmpty(p *string) string {
	return valueOr(p, "")
}

// schemaReference renders the "$schema" member as a string. Some producers
// emit an object carrying the schema url instead of a plain string.
func schemaReference(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	schema := gjson.ParseBytes(raw)
	if schema.IsObject() {
		return schema.Get("url").String()
	}

	return schema.String()
}

func normalizeTools(raw *rawMetadata) []models.Tool {
	if raw == nil {
		return []models.Tool{}
	}

	tools := make([]models.Tool, 0, len(raw.Tools))
	for _, t := range raw.Tools {
		author := valueOrEmpty(t.Author)
		if author == "" {
			author = valueOrEmpty(t.Vendor)
		}

		tools = append(tools, models.Tool{
			Type:    valueOrEmpty(t.Type),
			Author:  author,
			Name:    valueOr(t.Name, models.UnknownValue),
			Version: valueOr(t.Version, models.UnknownValue),
		})
	}

	return tools
}

func normalizeMetadataAuthors(raw *rawMetadata) []models.Author {
	if raw == nil {
		return []models.Author{}
	}

	authors := make([]models.Author, 0, len(raw.Authors))
	for _, a := range raw.Authors {
		author := models.Author{Name: valueOrEmpty(a.Name), Email: valueOrEmpty(a.Email)}
		if author.IsEmpty() {
			continue
		}
		authors = append(authors, author)
	}

	return authors
}

func normalizeMainComponent(raw *rawMetadata) models.MainComponent {
	if raw == nil || raw.Component == nil {
		return models.MainComponent{}
	}

	c := raw.Component

	return models.MainComponent{
		Name:    valueOrEmpty(c.Name),
		Type:    valueOrEmpty(c.Type),
		BOMRef:  valueOrEmpty(c.BOMRef),
		Version: valueOrEmpty(c.Version),
		Group:   valueOrEmpty(c.Group),
		PURL:    valueOrEmpty(c.PURL),
	}
}

func normalizeHashes(raw []rawHash) []models.Hash {
	hashes := make([]models.Hash, 0, len(raw))
	for _, h := range raw {
		hashes = append(hashes, models.Hash{
			Algorithm: valueOrEmpty(h.Alg),
			Content:   valueOrEmpty(h.Content),
		})
	}

	return hashes
}

func normalizeDependencies(raw []rawDependency) []models.Dependency {
	deps := make([]models.Dependency, 0, len(raw))
	for _, d := range raw {
		dependsOn := make([]string, len(d.DependsOn))
		copy(dependsOn, d.DependsOn)

		deps = append(deps, models.Dependency{
			Ref:       valueOrEmpty(d.Ref),
			DependsOn: dependsOn,
		})
	}

	return deps
}

func normalizeEnvelope(raw *rawDocument, format models.Format) *models.SourceDocument {
	doc := &models.SourceDocument{
		Format:       format,
		Schema:       schemaReference(raw.Schema),
		BOMFormat:    valueOrEmpty(raw.BOMFormat),
		SpecVersion:  valueOrEmpty(raw.SpecVersion),
		SerialNumber: valueOrEmpty(raw.SerialNumber),
		Metadata: models.SourceMetadata{
			Authors:   normalizeMetadataAuthors(raw.Metadata),
			Tools:     normalizeTools(raw.Metadata),
			Component: normalizeMainComponent(raw.Metadata),
		},
		Dependencies: normalizeDependencies(raw.Dependencies),
	}

	if raw.Version != nil {
		doc.Version = *raw.Version
	}
	if raw.Metadata != nil {
		doc.Metadata.Timestamp = valueOrEmpty(raw.Metadata.Timestamp)
	}

	return doc
}
