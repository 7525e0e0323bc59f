package integrator

import (
	"time"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/identity"
	"github.com/quickbom/quickbom/internal/sbom"
	"github.com/quickbom/quickbom/pkg/models"
)

const syntheticToolType = "application"

// entry is a unified component together with the sources it was seen in.
type entry struct {
	component  models.Component
	fromSyft   bool
	fromHatbom bool
}

// merger holds the identity map of a single integration. It must not be
// shared between calls.
type merger struct {
	opts    Options
	index   map[string]*entry
	entries []*entry
}

func newMerger(opts Options) *merger {
	return &merger{
		opts:  opts,
		index: make(map[string]*entry),
	}
}

// Merge reconciles a Hatbom and a Syft document into a new unified document.
//
// Syft is authoritative for package identity, licenses and authors; Hatbom
// contributes file hashes and is the only source of the dependency graph.
// Components are matched on their identity key only.
func Merge(hatbom, syft *models.SourceDocument, opts Options) *models.UnifiedSBOM {
	opts = opts.withDefaults()
	m := newMerger(opts)

	metadata := m.mergeMetadata(hatbom, syft)
	m.seedFromSyft(syft.Components)
	m.mergeFromHatbom(hatbom.Components)

	return &models.UnifiedSBOM{
		BOMFormat:    models.UnifiedBOMFormat,
		SpecVersion:  models.UnifiedSpecVersion,
		SerialNumber: opts.NewSerialNumber(),
		Version:      models.UnifiedVersion,
		Metadata:     metadata,
		Components:   m.components(),
		Dependencies: copyDependencies(hatbom.Dependencies),
	}
}

func (m *merger) mergeMetadata(hatbom, syft *models.SourceDocument) *models.Metadata {
	return &models.Metadata{
		Timestamp: m.opts.Now().UTC().Format(time.RFC3339),
		Authors:   mergeAuthors(hatbom, syft),
		Tools:     m.mergeTools(hatbom, syft),
		Component: mergeMainComponent(hatbom.Metadata.Component, syft.Metadata.Component),
	}
}

// mergeAuthors returns the Hatbom document authors followed by the authors
// credited on every Syft tool, without exact duplicates.
func mergeAuthors(hatbom, syft *models.SourceDocument) []models.Author {
	authors := make([]models.Author, 0, len(hatbom.Metadata.Authors))
	seen := make(map[models.Author]struct{})

	add := func(a models.Author) {
		if a.IsEmpty() {
			return
		}
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		authors = append(authors, a)
	}

	for _, a := range hatbom.Metadata.Authors {
		add(a)
	}
	for _, tool := range syft.Metadata.Tools {
		for _, a := range sbom.ParseAuthors(tool.Author) {
			add(a)
		}
	}

	return authors
}

func (m *merger) mergeTools(hatbom, syft *models.SourceDocument) []models.Tool {
	tools := make([]models.Tool, 0, len(syft.Metadata.Tools)+2)
	tools = append(tools, syft.Metadata.Tools...)

	hatbomTool := models.Tool{
		Type:    syntheticToolType,
		Name:    m.opts.HatbomToolName,
		Version: m.opts.HatbomToolVersion,
	}
	if first, ok := hatbom.Metadata.FirstTool(); ok {
		hatbomTool.Name = first.Name
		hatbomTool.Version = first.Version
		hatbomTool.Author = first.Author
	}

	return append(tools, hatbomTool, models.Tool{
		Type:    syntheticToolType,
		Name:    m.opts.IntegratorName,
		Version: m.opts.IntegratorVersion,
	})
}

// mergeMainComponent resolves every field on its own: the Hatbom value when
// set, else the Syft value. It returns nil when neither document describes
// a main component.
func mergeMainComponent(hatbom, syft models.MainComponent) *models.MainComponent {
	if hatbom == (models.MainComponent{}) && syft == (models.MainComponent{}) {
		return nil
	}

	main := &models.MainComponent{
		Name:    firstNonEmpty(hatbom.Name, syft.Name),
		Type:    firstNonEmpty(hatbom.Type, syft.Type),
		BOMRef:  firstNonEmpty(hatbom.BOMRef, syft.BOMRef),
		Version: firstNonEmpty(hatbom.Version, syft.Version),
		Group:   firstNonEmpty(hatbom.Group, syft.Group),
		PURL:    firstNonEmpty(hatbom.PURL, syft.PURL),
	}
	if main.Type == "" {
		main.Type = models.DefaultMainComponentType
	}

	return main
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func (m *merger) seedFromSyft(components []models.Component) {
	for _, c := range components {
		key := identity.ComponentKey(c)

		if _, exists := m.index[key]; exists {
			cmdlogger.Debugf("Duplicate Syft component %s, keeping the first occurrence", key)
			continue
		}

		component := c.Clone()
		component.Properties = component.Properties.Add(models.PropertySourceTool, models.FormatSyft.String())

		m.insert(key, &entry{component: component, fromSyft: true})
	}
}

func (m *merger) mergeFromHatbom(components []models.Component) {
	for _, c := range components {
		key := identity.ComponentKey(c)

		existing, exists := m.index[key]
		if !exists {
			m.insert(key, &entry{component: fromHatbom(c), fromHatbom: true})

			continue
		}

		existing.component.Hashes = append(existing.component.Hashes, c.Hashes...)

		if existing.fromSyft && !existing.fromHatbom {
			existing.component.Properties = existing.component.Properties.Add(
				models.PropertyIntegratedWith,
				models.FormatHatbom.String(),
			)
		}

		if existing.component.Group == "" {
			existing.component.Group = c.Group
		}

		existing.fromHatbom = true
	}
}

// fromHatbom builds a unified component sourced only from Hatbom, which
// carries no license or author data.
func fromHatbom(c models.Component) models.Component {
	return models.Component{
		Name:    c.Name,
		Version: c.Version,
		Type:    c.Type,
		BOMRef:  c.BOMRef,
		PURL:    c.PURL,
		Group:   c.Group,
		Hashes:  append([]models.Hash(nil), c.Hashes...),
		Properties: models.Properties{}.Add(
			models.PropertySourceTool,
			models.FormatHatbom.String(),
		),
	}
}

func (m *merger) insert(key string, e *entry) {
	m.index[key] = e
	m.entries = append(m.entries, e)
}

func (m *merger) components() []models.Component {
	components := make([]models.Component, 0, len(m.entries))
	for _, e := range m.entries {
		components = append(components, e.component)
	}

	return components
}

func copyDependencies(deps []models.Dependency) []models.Dependency {
	copied := make([]models.Dependency, 0, len(deps))
	for _, d := range deps {
		dependsOn := make([]string, len(d.DependsOn))
		copy(dependsOn, d.DependsOn)

		copied = append(copied, models.Dependency{Ref: d.Ref, DependsOn: dependsOn})
	}

	return copied
}
