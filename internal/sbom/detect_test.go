package sbom_test

import (
	"os"
	"testing"

	"github.com/quickbom/quickbom/internal/sbom"
	"github.com/quickbom/quickbom/pkg/models"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  models.Format
	}{
		{
			name:  "schema and syft tool in components",
			input: `{"$schema": "http://cyclonedx.org/schema/bom-1.6.schema.json", "metadata": {"tools": {"components": [{"name": "syft"}]}}}`,
			want:  models.FormatSyft,
		},
		{
			name:  "schema and syft tool in bare array",
			input: `{"$schema": "http://cyclonedx.org/schema/bom-1.4.schema.json", "metadata": {"tools": [{"vendor": "anchore", "name": "syft"}]}}`,
			want:  models.FormatSyft,
		},
		{
			name:  "schema reference is case insensitive",
			input: `{"$schema": "http://CycloneDX.org/schema/bom-1.5.schema.json", "metadata": {"tools": [{"name": "syft"}]}}`,
			want:  models.FormatSyft,
		},
		{
			name:  "schema given as object",
			input: `{"$schema": {"url": "http://cyclonedx.org/schema/bom-1.6.schema.json"}, "metadata": {"tools": [{"name": "syft"}]}}`,
			want:  models.FormatSyft,
		},
		{
			name:  "syft tool is not first",
			input: `{"$schema": "http://cyclonedx.org/schema/bom-1.6.schema.json", "metadata": {"tools": {"components": [{"name": "cdxgen"}, {"name": "syft"}]}}}`,
			want:  models.FormatSyft,
		},
		{
			name:  "no schema",
			input: `{"metadata": {"tools": {"components": [{"name": "syft"}]}}}`,
			want:  models.FormatHatbom,
		},
		{
			name:  "schema that is not cyclonedx",
			input: `{"$schema": "https://spdx.org/schema/2.3.json", "metadata": {"tools": [{"name": "syft"}]}}`,
			want:  models.FormatHatbom,
		},
		{
			name:  "tool name must match exactly",
			input: `{"$schema": "http://cyclonedx.org/schema/bom-1.6.schema.json", "metadata": {"tools": [{"name": "Syft"}, {"name": "syft-lite"}]}}`,
			want:  models.FormatHatbom,
		},
		{
			name:  "no tools",
			input: `{"$schema": "http://cyclonedx.org/schema/bom-1.6.schema.json", "metadata": {}}`,
			want:  models.FormatHatbom,
		},
		{
			name:  "invalid json",
			input: `{"$schema": `,
			want:  models.FormatHatbom,
		},
		{
			name:  "not an object",
			input: `["syft"]`,
			want:  models.FormatHatbom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sbom.Detect([]byte(tt.input)); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_Fixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want models.Format
	}{
		{path: "testdata/hatbom.json", want: models.FormatHatbom},
		{path: "testdata/syft.json", want: models.FormatSyft},
		{path: "testdata/syft-tools-array.json", want: models.FormatSyft},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			data, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("could not read fixture: %v", err)
			}

			if got := sbom.Detect(data); got != tt.want {
				t.Errorf("Detect(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
