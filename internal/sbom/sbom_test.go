package sbom_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/quickbom/quickbom/internal/sbom"
	"github.com/quickbom/quickbom/pkg/models"
)

func readFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read fixture %s: %v", path, err)
	}

	return data
}

func TestParseHatbom(t *testing.T) {
	t.Parallel()

	got, err := sbom.ParseHatbom(readFixture(t, "testdata/hatbom.json"))
	if err != nil {
		t.Fatalf("ParseHatbom() unexpected error = %v", err)
	}

	want := &models.SourceDocument{
		Format:       models.FormatHatbom,
		BOMFormat:    "CycloneDX",
		SpecVersion:  "1.6",
		SerialNumber: "urn:uuid:4f5c1a8e-0b1e-4a36-9d53-0f3a1e9f2b11",
		Version:      1,
		Metadata: models.SourceMetadata{
			Timestamp: "2025-05-20T08:14:03Z",
			Authors:   []models.Author{{Name: "Build Team", Email: "build@example.com"}},
			Tools:     []models.Tool{{Type: "application", Name: "hatbom", Version: "0.9.4"}},
			Component: models.MainComponent{
				Name:    "demo-app",
				Type:    "application",
				BOMRef:  "demo-app-1.4.0",
				Version: "1.4.0",
				Group:   "example",
				PURL:    "pkg:generic/example/demo-app@1.4.0",
			},
		},
		Components: []models.Component{
			{
				Name:    "numpy",
				Version: "2.2.6",
				Type:    "library",
				BOMRef:  "numpy-2.2.6",
				PURL:    "pkg:pypi/numpy@2.2.6",
				Group:   "scientific",
				Hashes:  []models.Hash{{Algorithm: "MD5", Content: "hash-numpy-123"}},
			},
			{
				Name:    "libssl.so.3",
				Version: "3.0.13",
				Type:    "file",
				BOMRef:  "libssl-3.0.13",
				Hashes: []models.Hash{
					{Algorithm: "SHA-256", Content: "5d0c2a2f1f9a8d7e0b4e3c6a1f2d9b8c7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b"},
					{Algorithm: "MD5", Content: "0e4b9c1d2a3f"},
				},
			},
		},
		Dependencies: []models.Dependency{
			{Ref: "demo-app-1.4.0", DependsOn: []string{"numpy-2.2.6", "libssl-3.0.13"}},
			{Ref: "numpy-2.2.6", DependsOn: []string{}},
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ParseHatbom() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSyft(t *testing.T) {
	t.Parallel()

	got, err := sbom.ParseSyft(readFixture(t, "testdata/syft.json"))
	if err != nil {
		t.Fatalf("ParseSyft() unexpected error = %v", err)
	}

	if got.Schema != "http://cyclonedx.org/schema/bom-1.6.schema.json" {
		t.Errorf("unexpected schema %q", got.Schema)
	}

	wantTools := []models.Tool{{Type: "application", Author: "anchore", Name: "syft", Version: "1.26.1"}}
	if diff := cmp.Diff(wantTools, got.Metadata.Tools); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}

	wantMain := models.MainComponent{BOMRef: "af63bd4c8601b7f1", Type: "file", Name: "demo-app"}
	if diff := cmp.Diff(wantMain, got.Metadata.Component); diff != "" {
		t.Errorf("main component mismatch (-want +got):\n%s", diff)
	}

	wantComponents := []models.Component{
		{
			Name:     "numpy",
			Version:  "2.2.6",
			Type:     "library",
			BOMRef:   "pkg:pypi/numpy@2.2.6?package-id=8b2d6f1c0e3a5b47",
			PURL:     "pkg:pypi/numpy@2.2.6",
			CPE:      "cpe:2.3:a:numpy:numpy:2.2.6:*:*:*:*:*:*:*",
			Licenses: []models.License{{ID: "BSD-3-Clause"}},
			Properties: models.Properties{
				{Name: "syft:package:foundBy", Value: "python-installed-package-cataloger"},
				{Name: "syft:location:0:path", Value: "/usr/lib/python3/site-packages/numpy-2.2.6.dist-info/METADATA"},
			},
			Authors: []models.Author{{Name: "Travis E. Oliphant et al."}},
		},
		{
			Name:        "requests",
			Version:     "2.32.3",
			Type:        "library",
			BOMRef:      "pkg:pypi/requests@2.32.3?package-id=5e1f0b9a7c3d2e81",
			PURL:        "pkg:pypi/requests@2.32.3",
			Description: "Python HTTP for Humans.",
			Licenses:    []models.License{{Name: "Apache 2.0"}},
			Authors:     []models.Author{{Name: "Kenneth Reitz", Email: "me@kennethreitz.org"}},
		},
		{
			Name:    "packaging",
			Version: "24.2",
			Type:    "library",
			BOMRef:  "pkg:pypi/packaging@24.2?package-id=c4a7e2d90f6b1358",
			PURL:    "pkg:pypi/packaging@24.2",
			Licenses: []models.License{
				{Expression: "Apache-2.0 OR BSD-2-Clause"},
				{Name: models.NotAvailableLicense},
			},
			Authors: []models.Author{
				{Name: "Donald Stufft", Email: "donald@stufft.io"},
				{Name: "PyPA, Maintainers", Email: "pypa-dev@python.org"},
			},
		},
	}

	if diff := cmp.Diff(wantComponents, got.Components, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	if len(got.Dependencies) != 1 {
		t.Errorf("expected the Syft dependencies to be normalized, got %v", got.Dependencies)
	}
}

func TestParseSyft_ToolShapesAreEquivalent(t *testing.T) {
	t.Parallel()

	legacy, err := sbom.ParseSyft(readFixture(t, "testdata/syft-tools-array.json"))
	if err != nil {
		t.Fatalf("ParseSyft() unexpected error = %v", err)
	}

	first, ok := legacy.Metadata.FirstTool()
	if !ok {
		t.Fatal("expected a first tool")
	}

	want := models.Tool{Author: "anchore", Name: "syft", Version: "0.94.0"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("FirstTool() mismatch (-want +got):\n%s", diff)
	}

	current, err := sbom.ParseSyft(readFixture(t, "testdata/syft.json"))
	if err != nil {
		t.Fatalf("ParseSyft() unexpected error = %v", err)
	}

	first, _ = current.Metadata.FirstTool()
	if first.Name != "syft" || first.Author != "anchore" {
		t.Errorf("FirstTool() of the components shape = %+v", first)
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	input := `{
		"metadata": {"tools": [{}], "authors": [{}]},
		"components": [{"hashes": [{}]}],
		"dependencies": [{"ref": "a"}]
	}`

	got, err := sbom.ParseHatbom([]byte(input))
	if err != nil {
		t.Fatalf("ParseHatbom() unexpected error = %v", err)
	}

	want := &models.SourceDocument{
		Format: models.FormatHatbom,
		Metadata: models.SourceMetadata{
			Tools: []models.Tool{{Name: models.UnknownValue, Version: models.UnknownValue}},
		},
		Components: []models.Component{
			{
				Name:    models.UnknownValue,
				Version: models.UnknownValue,
				Type:    models.UnknownValue,
				Hashes:  []models.Hash{{}},
			},
		},
		Dependencies: []models.Dependency{{Ref: "a", DependsOn: []string{}}},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ParseHatbom() mismatch (-want +got):\n%s", diff)
	}

	if got.Dependencies[0].DependsOn == nil {
		t.Error("dependsOn should never be nil")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	hatbom := string(readFixture(t, "testdata/hatbom.json"))
	syft := string(readFixture(t, "testdata/syft.json"))

	tests := []struct {
		name   string
		input  string
		format models.Format
		want   error
	}{
		{
			name:   "truncated document",
			input:  string(readFixture(t, "testdata/truncated.json")),
			format: models.FormatHatbom,
			want:   sbom.ErrDecode,
		},
		{
			name:   "not json at all",
			input:  "hatbom",
			format: models.FormatSyft,
			want:   sbom.ErrDecode,
		},
		{
			name:   "top level array",
			input:  string(readFixture(t, "testdata/array.json")),
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "top level null",
			input:  "null",
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "hatbom without metadata",
			input:  `{"components": []}`,
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "hatbom given as syft",
			input:  hatbom,
			format: models.FormatSyft,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "syft given as hatbom",
			input:  syft,
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "wrong field type",
			input:  `{"metadata": {"timestamp": 1716192843}}`,
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
		{
			name:   "tools neither array nor object",
			input:  `{"metadata": {"tools": "syft"}}`,
			format: models.FormatHatbom,
			want:   sbom.ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sbom.Parse([]byte(tt.input), tt.format)

			if got != nil {
				t.Errorf("expected no document, got %+v", got)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}

			var parseErr *sbom.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected a *sbom.ParseError, got %T", err)
			}
			if parseErr.Format != tt.format {
				t.Errorf("ParseError.Format = %v, want %v", parseErr.Format, tt.format)
			}
		})
	}
}

func TestParseAny(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"testdata/hatbom.json", "testdata/syft.json"} {
		data := readFixture(t, path)

		got, err := sbom.ParseAny(data)
		if err != nil {
			t.Fatalf("ParseAny(%s) unexpected error = %v", path, err)
		}

		if got.Format != sbom.Detect(data) {
			t.Errorf("ParseAny(%s) format = %v, want %v", path, got.Format, sbom.Detect(data))
		}
	}

	if _, err := sbom.ParseAny([]byte("{")); !errors.Is(err, sbom.ErrDecode) {
		t.Errorf("ParseAny() error = %v, want %v", err, sbom.ErrDecode)
	}
}

func TestReaderFor(t *testing.T) {
	t.Parallel()

	for _, format := range []models.Format{models.FormatHatbom, models.FormatSyft} {
		reader := sbom.ReaderFor(format)
		if reader == nil {
			t.Fatalf("no reader for %v", format)
		}
		if reader.Format() != format || reader.Name() != format.String() {
			t.Errorf("ReaderFor(%v) returned %s", format, reader.Name())
		}
	}

	if sbom.ReaderFor("SPDX") != nil {
		t.Error("expected no reader for an unknown format")
	}

	doc, err := sbom.ReaderFor(models.FormatSyft).Read(readFixture(t, "testdata/syft.json"))
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}
	if len(doc.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(doc.Components))
	}
}
