package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-webcontent/internal/config"
)

// envPrefix marks the variables read by webcontent.
const envPrefix = "WEBCONTENT_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // WEBCONTENT_CONFIG: config file name or path
	Strict      *bool  // WEBCONTENT_STRICT: fail on missing reference tags
	LogLevel    string // WEBCONTENT_LOG_LEVEL: debug, info, warn, error, disabled
	PreviewAddr string // WEBCONTENT_PREVIEW_ADDR: preview listen address
}

// knownEnvVars lists valid WEBCONTENT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WEBCONTENT_CONFIG":       true,
	"WEBCONTENT_STRICT":       true,
	"WEBCONTENT_LOG_LEVEL":    true,
	"WEBCONTENT_PREVIEW_ADDR": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable WEBCONTENT_STRICT is reported as a usage error.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath:  getenv("WEBCONTENT_CONFIG"),
		LogLevel:    getenv("WEBCONTENT_LOG_LEVEL"),
		PreviewAddr: getenv("WEBCONTENT_PREVIEW_ADDR"),
	}

	if raw := getenv("WEBCONTENT_STRICT"); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: WEBCONTENT_STRICT=%q is not a boolean", ErrUsage, raw)
		}
		cfg.Strict = &strict
	}

	return cfg, nil
}

// warnUnknownEnvVars prints a warning for each unrecognized WEBCONTENT_* variable.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays environment values on cfg.
// Set variables win over the config file; flags are applied afterwards.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Strict != nil {
		cfg.Strict = *env.Strict
	}
	if env.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(env.LogLevel)
	}
	if env.PreviewAddr != "" {
		cfg.Preview.Addr = env.PreviewAddr
	}
}
