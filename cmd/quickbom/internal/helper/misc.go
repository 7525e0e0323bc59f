package helper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/config"
	"golang.org/x/term"
)

// TerminalWidth returns the width of w when it is a terminal, and 0 otherwise.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil { // If output is not a terminal,
		return 0
	}

	return width
}

// LoadConfig returns the config to use for the input at targetPath. An
// override file that exists but cannot be parsed is ignored like any other
// invalid config file, while a missing override is an error.
func LoadConfig(configPath, targetPath string) (config.Config, error) {
	manager := config.NewManager()

	if configPath == "" {
		return manager.Get(targetPath), nil
	}

	if err := manager.UseOverride(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		cmdlogger.Errorf("Ignored invalid config file at %s because: %v", configPath, err)

		return manager.DefaultConfig, nil
	}

	return *manager.OverrideConfig, nil
}
