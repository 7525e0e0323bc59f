package testutility

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type JSONReplaceRule struct {
	Path        string
	ReplaceFunc func(toReplace gjson.Result) any
}

var (
	// AnySerialNumber replaces the serial number of a unified document, which
	// is fresh on every run
	AnySerialNumber = JSONReplaceRule{
		Path: "serialNumber",
		ReplaceFunc: func(toReplace gjson.Result) any {
			if strings.HasPrefix(toReplace.String(), "urn:uuid:") {
				return "urn:uuid:<any>"
			}

			return toReplace.String()
		},
	}
	// AnyTimestamp replaces the metadata timestamp of a unified document
	AnyTimestamp = JSONReplaceRule{
		Path: "metadata.timestamp",
		ReplaceFunc: func(_ gjson.Result) any {
			return "2025-01-01T01:01:01Z"
		},
	}
	// AnySummarySerialNumber is AnySerialNumber for a summary record
	AnySummarySerialNumber = JSONReplaceRule{
		Path:        "serial_number",
		ReplaceFunc: AnySerialNumber.ReplaceFunc,
	}
	// AnySummaryTimestamp is AnyTimestamp for a summary record
	AnySummaryTimestamp = JSONReplaceRule{
		Path:        "timestamp",
		ReplaceFunc: AnyTimestamp.ReplaceFunc,
	}
	// UnifiedSBOMRules normalizes every value of a unified document that
	// changes between runs
	UnifiedSBOMRules = []JSONReplaceRule{AnySerialNumber, AnyTimestamp}
	// SummaryRules normalizes every value of a summary record that changes
	// between runs
	SummaryRules = []JSONReplaceRule{AnySummarySerialNumber, AnySummaryTimestamp}
)

func expandArrayPaths(t *testing.T, jsonInput string, path string) []string {
	t.Helper()

	// split on the first intermediate #, if present
	pathToArray, restOfPath, hasArrayPlaceholder := strings.Cut(path, ".#.")

	// if there is no intermediate placeholder, check for (and cut) a terminal one
	if !hasArrayPlaceholder {
		pathToArray, hasArrayPlaceholder = strings.CutSuffix(path, ".#")
	}

	if !hasArrayPlaceholder {
		return []string{path}
	}

	r := gjson.Get(jsonInput, pathToArray)

	if !r.IsArray() {
		return []string{}
	}

	paths := make([]string, 0, len(r.Array()))

	for i := range r.Array() {
		static := pathToArray + "." + strconv.Itoa(i)

		if restOfPath != "" {
			static += "." + restOfPath
		}
		paths = append(paths, expandArrayPaths(t, jsonInput, static)...)
	}

	return paths
}

// replaceJSONInput takes a gjson path and replaces all elements the path
// matches with the output of replacer
func replaceJSONInput(t *testing.T, jsonInput string, path string, replacer func(toReplace gjson.Result) any) string {
	t.Helper()

	var err error
	json := jsonInput
	for _, pathElem := range expandArrayPaths(t, jsonInput, path) {
		res := gjson.Get(jsonInput, pathElem)

		if !res.Exists() {
			continue
		}

		json, err = sjson.SetOptions(json, pathElem, replacer(res), &sjson.Options{Optimistic: true})
		if err != nil {
			t.Fatalf("failed to set element %s: %v", pathElem, err)
		}
	}

	return json
}

// NormalizeJSON runs the given rules on jsonInput and returns the result
func NormalizeJSON(t *testing.T, jsonInput string, rules ...JSONReplaceRule) string {
	t.Helper()

	for _, rule := range rules {
		jsonInput = replaceJSONInput(t, jsonInput, rule.Path, rule.ReplaceFunc)
	}

	return jsonInput
}

// MatchJSON asserts that got and want hold the same JSON value once both have
// been normalized with rules. Key order and formatting are ignored.
func MatchJSON(t *testing.T, want, got string, rules ...JSONReplaceRule) {
	t.Helper()

	var wantValue, gotValue any

	if err := json.Unmarshal([]byte(NormalizeJSON(t, want, rules...)), &wantValue); err != nil {
		t.Fatalf("expected value is not valid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(NormalizeJSON(t, got, rules...)), &gotValue); err != nil {
		t.Fatalf("actual value is not valid JSON: %v\n%s", err, got)
	}

	if diff := cmp.Diff(wantValue, gotValue); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}
