package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quickbom/quickbom/internal/testlogger"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(testlogger.New()))

	os.Exit(m.Run())
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	if ec := run([]string{"", "--version"}, stdout, stderr); ec != 0 {
		t.Errorf("cli exited with code %d, not 0\nstderr:\n%s", ec, stderr)
	}

	if !strings.Contains(stdout.String(), "quickbom version: 1.0.0") {
		t.Errorf("expected the version to be printed, got:\n%s", stdout)
	}
}

func TestRun_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       func(outputDir string) []string
		exit       int
		wantStdout string
	}{
		{
			name: "integrate by default",
			args: func(outputDir string) []string {
				return []string{"", "--hatbom", "./fixtures/hatbom.json", "--syft", "./fixtures/syft.json", "--summary-format", "json", "--output-dir", outputDir}
			},
			exit:       0,
			wantStdout: `"integrated_components": 1`,
		},
		{
			name: "detect",
			args: func(string) []string {
				return []string{"", "detect", "./fixtures/syft.json"}
			},
			exit:       0,
			wantStdout: "./fixtures/syft.json: Syft",
		},
		{
			name: "schema mismatch",
			args: func(outputDir string) []string {
				return []string{"", "integrate", "--hatbom", "./fixtures/syft.json", "--syft", "./fixtures/syft.json", "--output-dir", outputDir}
			},
			exit: 129,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			args := tt.args(filepath.Join(t.TempDir(), "out"))

			if ec := run(args, stdout, stderr); ec != tt.exit {
				t.Errorf("cli exited with code %d, not %d\nstderr:\n%s", ec, tt.exit, stderr)
			}

			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("expected stdout to contain %q, got:\n%s", tt.wantStdout, stdout)
			}
		})
	}
}
