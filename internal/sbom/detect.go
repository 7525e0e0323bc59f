package sbom

import (
	"strings"

	"github.com/quickbom/quickbom/pkg/models"
	"github.com/tidwall/gjson"
)

// syftToolName is the tool name Syft records for itself in metadata.tools.
const syftToolName = "syft"

// Detect classifies a raw JSON document. A document is Syft only when it
// references a CycloneDX schema and lists a tool literally named "syft";
// every other input, including invalid JSON, is Hatbom.
//
// Only these two dialects are known. Supporting another producer requires a
// new Reader and a new rule here.
func Detect(data []byte) models.Format {
	return DetectResult(gjson.ParseBytes(data))
}

// DetectResult is Detect for an already parsed document.
func DetectResult(doc gjson.Result) models.Format {
	if hasCycloneDXSchema(doc) && hasTool(doc, syftToolName) {
		return models.FormatSyft
	}

	return models.FormatHatbom
}

func hasCycloneDXSchema(doc gjson.Result) bool {
	schema := doc.Get("$schema")
	if !schema.Exists() {
		return false
	}

	ref := schema.String()
	if schema.IsObject() {
		ref = schema.Get("url").String()
	}

	return strings.Contains(strings.ToLower(ref), "cyclonedx")
}

func hasTool(doc gjson.Result, name string) bool {
	tools := doc.Get("metadata.tools")
	if !tools.IsArray() {
		tools = tools.Get("components")
	}
	if !tools.IsArray() {
		return false
	}

	found := false
	tools.ForEach(func(_, tool gjson.Result) bool {
		if tool.Get("name").String() == name {
			found = true

			return false
		}

		return true
	})

	return found
}
