package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-webcontent/internal/fileutil"
	"github.com/alnah/go-webcontent/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory below the user config dir searched for configs.
const AppDirName = "go-webcontent"

// Field length limits.
const (
	MaxLevelLength  = 10  // "disabled"
	MaxFormatLength = 10  // "console", "json"
	MaxAddrLength   = 255 // host:port
)

// Log levels and formats accepted in the log section.
var (
	validLevels  = []string{"debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"console", "json"}
)

// Config holds the options of a generator run.
// Source and output locations are fixed and intentionally absent.
type Config struct {
	Strict  bool          `yaml:"strict"` // fail when a reference tag is missing from the markup
	Log     LogConfig     `yaml:"log"`
	Preview PreviewConfig `yaml:"preview"`
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error, disabled (default: warn)
	Format string `yaml:"format"` // console or json (default: console)
}

// PreviewConfig defines the local preview server.
type PreviewConfig struct {
	Addr string `yaml:"addr"` // listen address (default: 127.0.0.1:8080)
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Strict:  false,
		Log:     LogConfig{Level: "warn", Format: "console"},
		Preview: PreviewConfig{Addr: "127.0.0.1:8080"},
	}
}

// Validate checks enumerations, lengths and the preview address.
// Empty values are accepted and mean "keep the default".
func (c *Config) Validate() error {
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" && !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q (must be one of %s)", ErrInvalidValue, c.Log.Level, strings.Join(validLevels, ", "))
	}

	if err := validateFieldLength("log.format", c.Log.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Log.Format != "" && !contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}

	if err := validateFieldLength("preview.addr", c.Preview.Addr, MaxAddrLength); err != nil {
		return err
	}
	if c.Preview.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Preview.Addr); err != nil {
			return fmt.Errorf("%w: preview.addr %q: %v", ErrInvalidValue, c.Preview.Addr, err)
		}
	}

	return nil
}

// ApplyDefaults fills empty fields from DefaultConfig.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Preview.Addr == "" {
		c.Preview.Addr = def.Preview.Addr
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	return LoadConfigIn("", nameOrPath)
}

// LoadConfigIn is LoadConfig with config names searched in dir instead of
// the current directory. File paths are used as given.
func LoadConfigIn(dir, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(dir, nameOrPath)
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

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory first, then the user config directory; .yaml before .yml.
func SearchPaths(name string) []string {
	return SearchPathsIn("", name)
}

// SearchPathsIn is SearchPaths with dir in place of the current directory.
func SearchPathsIn(dir, name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, filepath.Join(dir, name+ext))
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing candidate from SearchPathsIn.
func resolveConfigPath(dir, name string) (string, error) {
	tried := SearchPathsIn(dir, name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
