// Package config manages the configuration for quickbom.
package config

import "github.com/quickbom/quickbom/internal/version"

var QuickBOMConfigName = "quickbom.toml"

const (
	DefaultIntegratorName    = "Quick-BOM-Integrator"
	DefaultIntegratorVersion = version.IntegratorVersion
	DefaultHatbomToolName    = "Hatbom"
	DefaultHatbomToolVersion = "Unknown"
	DefaultOutputDirectory   = "."
)

type Config struct {
	// Integrator is the tool entry quickbom adds for itself
	Integrator Tool `toml:"Integrator"`
	// HatbomTool is used when the Hatbom document does not name its own tool
	HatbomTool Tool   `toml:"HatbomTool"`
	Output     Output `toml:"Output"`

	// The path to config file that this config was loaded from,
	// set after having successfully parsed the file
	LoadPath string `toml:"-"`
}

type Tool struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type Output struct {
	Directory string `toml:"directory"`
}

// Default returns the configuration used when no config file is found.
func Default() Config {
	return Config{
		Integrator: Tool{Name: DefaultIntegratorName, Version: DefaultIntegratorVersion},
		HatbomTool: Tool{Name: DefaultHatbomToolName, Version: DefaultHatbomToolVersion},
		Output:     Output{Directory: DefaultOutputDirectory},
	}
}

// withDefaults fills every field that the file left empty.
func (c Config) withDefaults() Config {
	def := Default()

	if c.Integrator.Name == "" {
		c.Integrator.Name = def.Integrator.Name
	}
	if c.Integrator.Version == "" {
		c.Integrator.Version = def.Integrator.Version
	}
	if c.HatbomTool.Name == "" {
		c.HatbomTool.Name = def.HatbomTool.Name
	}
	if c.HatbomTool.Version == "" {
		c.HatbomTool.Version = def.HatbomTool.Version
	}
	if c.Output.Directory == "" {
		c.Output.Directory = def.Output.Directory
	}

	return c
}
