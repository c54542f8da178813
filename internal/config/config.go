// Package config loads converter configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-html5up/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidLang     = errors.New("invalid language code")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
)

// maxConfigSize caps config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// MaxLangLength bounds the lang field; the longest registered BCP 47
// tags stay well under this.
const MaxLangLength = 35

// langPattern matches plain language subtag characters; the value ends
// up inside a double-quoted HTML attribute.
var langPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// DefaultOutputPath is where converted documents land unless overridden.
const DefaultOutputPath = "output.htm"

// DefaultLang is the fallback language code for the html tag.
const DefaultLang = "en"

// Config holds all configuration for document conversion.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Lang   string       `yaml:"lang"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Default string `yaml:"default"` // Default input file (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // Output file path (empty = output.htm)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Default: ""},
		Output: OutputConfig{Path: DefaultOutputPath},
		Lang:   DefaultLang,
	}
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Lang != "" {
		if len(c.Lang) > MaxLangLength || !langPattern.MatchString(c.Lang) {
			return fmt.Errorf("%w: %q", ErrInvalidLang, c.Lang)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-html5up/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		for _, ext := range extensions {
			homePath := filepath.Join(home, ".config", "go-html5up", name+ext)
			if fileutil.FileExists(homePath) {
				return homePath, nil
			}
			triedPaths = append(triedPaths, homePath)
		}
	}

	return "", fmt.Errorf("%w: %s (tried: %v)", ErrConfigNotFound, name, triedPaths)
}
