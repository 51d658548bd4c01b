// config.go: Analysis configuration loading with multi-format support
//
// Configuration is read once, before the capability registry starts. The
// file format is detected by Argus; YAML goes through gopkg.in/yaml.v3 for
// full YAML 1.2 support and every other format is parsed by Argus and bound
// through JSON. ${VAR} and ${VAR:-default} placeholders are expanded before
// parsing.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agilira/argus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is tried before the bare variable name during expansion.
const EnvPrefix = "GO_ANALYSIS_"

var envPlaceholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// Config configures the analysis plugin.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// DisabledModules are left out of the registry inventory.
	DisabledModules []string `json:"disabled_modules,omitempty" yaml:"disabled_modules,omitempty"`

	// ExtensionPoints holds per-extension-point overrides keyed by id.
	ExtensionPoints map[string]ExtensionPointConfig `json:"extension_points,omitempty" yaml:"extension_points,omitempty"`
}

// ExtensionPointConfig adjusts a built-in extension point.
type ExtensionPointConfig struct {
	// ExtraCandidates are tried after the built-in candidates, in order.
	ExtraCandidates []string `json:"extra_candidates,omitempty" yaml:"extra_candidates,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "info",
		ExtensionPoints: make(map[string]ExtensionPointConfig),
	}
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ExtensionPoints == nil {
		c.ExtensionPoints = make(map[string]ExtensionPointConfig)
	}
}

// Validate checks the configuration against the built-in extension points.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return NewConfigValidationError(fmt.Sprintf("unsupported log level %q", c.LogLevel), nil)
	}

	for _, name := range c.DisabledModules {
		if strings.TrimSpace(name) == "" {
			return NewConfigValidationError("disabled module name cannot be empty", nil)
		}
	}

	known := make(map[string]struct{})
	for _, ep := range DefaultExtensionPoints() {
		known[ep.ID] = struct{}{}
	}
	for id, epc := range c.ExtensionPoints {
		if _, ok := known[id]; !ok {
			return NewConfigValidationError("unknown extension point", NewUnknownExtensionPointError(id))
		}
		for i, candidate := range epc.ExtraCandidates {
			if strings.TrimSpace(candidate) == "" {
				return NewConfigValidationError(fmt.Sprintf("extension point %s: extra candidate %d is empty", id, i), nil)
			}
		}
	}
	return nil
}

// LoadConfigFromFile loads, expands, validates and defaults a configuration
// file. The format is detected from the file extension.
func LoadConfigFromFile(path string) (Config, error) {
	var config Config

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - operator supplied path
	if err != nil {
		if os.IsNotExist(err) {
			return config, NewConfigNotFoundError(cleanPath)
		}
		return config, NewConfigFileError(cleanPath, "failed to read", err)
	}

	expanded := ExpandEnvironmentVariables(string(data))

	format := argus.DetectFormat(cleanPath)
	if err := parseConfig([]byte(expanded), format, &config); err != nil {
		return config, NewConfigParseError(cleanPath, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	config.ApplyDefaults()
	return config, nil
}

// parseConfig uses yaml.v3 for YAML and Argus for every other format.
func parseConfig(data []byte, format argus.ConfigFormat, config *Config) error {
	if format == argus.FormatYAML {
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
		return nil
	}

	configMap, err := argus.ParseConfig(data, format)
	if err != nil {
		return err
	}
	return bindConfig(configMap, config)
}

// bindConfig binds a generic configuration map through JSON.
func bindConfig(configMap map[string]interface{}, config *Config) error {
	if configMap == nil {
		return fmt.Errorf("configuration map is nil")
	}

	jsonBytes, err := json.Marshal(configMap)
	if err != nil {
		return fmt.Errorf("failed to marshal config map to JSON: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// ExpandEnvironmentVariables expands ${VAR} and ${VAR:-default}.
//
// Resolution order: ${EnvPrefix}VAR, then VAR, then the inline default.
// Unset variables without a default expand to the empty string.
func ExpandEnvironmentVariables(input string) string {
	if input == "" {
		return input
	}

	return envPlaceholder.ReplaceAllStringFunc(input, func(match string) string {
		sub := envPlaceholder.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		name := sub[1]

		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			return v
		}
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		if len(sub) >= 4 {
			return sub[3]
		}
		return ""
	})
}
