package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/quickbom/quickbom/internal/cmdlogger"
)

type Manager struct {
	// Override to replace all other configs
	OverrideConfig *Config
	// Config to use if no config file is found next to the input
	DefaultConfig Config
	// Cache to store loaded configs
	ConfigMap map[string]Config
}

// NewManager returns a Manager falling back to Default.
func NewManager() *Manager {
	return &Manager{
		DefaultConfig: Default(),
		ConfigMap:     make(map[string]Config),
	}
}

// UseOverride updates the Manager to use the config at the given path in place
// of any other config files that would be loaded when calling Get
func (c *Manager) UseOverride(configPath string) error {
	config, configErr := tryLoadConfig(configPath)
	if configErr != nil {
		return configErr
	}
	c.OverrideConfig = &config

	return nil
}

// Get returns the config to use for the input document at targetPath, which
// is the quickbom.toml in the same directory if there is one
func (c *Manager) Get(targetPath string) Config {
	if c.OverrideConfig != nil {
		return *c.OverrideConfig
	}

	configPath, err := normalizeConfigLoadPath(targetPath)
	if err != nil {
		return c.DefaultConfig
	}

	config, alreadyExists := c.ConfigMap[configPath]
	if alreadyExists {
		return config
	}

	config, configErr := tryLoadConfig(configPath)
	if configErr == nil {
		cmdlogger.Infof("Loaded config from: %s", config.LoadPath)
	} else {
		// anything other than the config file not existing is most likely due to an invalid config file
		if !errors.Is(configErr, os.ErrNotExist) {
			cmdlogger.Errorf("Ignored invalid config file at %s because: %v", configPath, configErr)
		}
		config = c.DefaultConfig
	}
	c.ConfigMap[configPath] = config

	return config
}

// Finds the containing folder of `target`, then appends QuickBOMConfigName
func normalizeConfigLoadPath(target string) (string, error) {
	stat, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("failed to stat target: %w", err)
	}

	var containingFolder string
	if !stat.IsDir() {
		containingFolder = filepath.Dir(target)
	} else {
		containingFolder = target
	}
	configPath := filepath.Join(containingFolder, QuickBOMConfigName)

	return configPath, nil
}

// tryLoadConfig attempts to parse the config file at the given path as TOML,
// returning the Config object with defaults applied if successful or
// otherwise the error
func tryLoadConfig(configPath string) (Config, error) {
	config := Config{}
	m, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return Config{}, err
	}

	unknownKeys := m.Undecoded()

	if len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))

		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	config = config.withDefaults()
	config.LoadPath = configPath

	return config, nil
}
