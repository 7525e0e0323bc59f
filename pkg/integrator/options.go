package integrator

import (
	"time"

	"github.com/google/uuid"
	"github.com/quickbom/quickbom/internal/config"
)

// Options tune a single integration. The zero value is valid: every empty
// field falls back to the built-in default.
type Options struct {
	// IntegratorName and IntegratorVersion describe the tool entry added for
	// quickbom itself.
	IntegratorName    string
	IntegratorVersion string

	// HatbomToolName and HatbomToolVersion are used when the Hatbom document
	// does not list a tool of its own.
	HatbomToolName    string
	HatbomToolVersion string

	// Now returns the time recorded in the unified metadata.
	Now func() time.Time
	// NewSerialNumber returns the serial number of the unified document.
	NewSerialNumber func() string
}

// OptionsFromConfig builds Options from a loaded configuration file.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		IntegratorName:    cfg.Integrator.Name,
		IntegratorVersion: cfg.Integrator.Version,
		HatbomToolName:    cfg.HatbomTool.Name,
		HatbomToolVersion: cfg.HatbomTool.Version,
	}
}

func newSerialNumber() string {
	return uuid.New().URN()
}

func (o Options) withDefaults() Options {
	def := OptionsFromConfig(config.Default())

	if o.IntegratorName == "" {
		o.IntegratorName = def.IntegratorName
	}
	if o.IntegratorVersion == "" {
		o.IntegratorVersion = def.IntegratorVersion
	}
	if o.HatbomToolName == "" {
		o.HatbomToolName = def.HatbomToolName
	}
	if o.HatbomToolVersion == "" {
		o.HatbomToolVersion = def.HatbomToolVersion
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewSerialNumber == nil {
		o.NewSerialNumber = newSerialNumber
	}

	return o
}
