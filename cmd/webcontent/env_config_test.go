package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-webcontent/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads all variables", func(t *testing.T) {
		t.Parallel()

		vars := map[string]string{
			"WEBCONTENT_CONFIG":       "ci",
			"WEBCONTENT_STRICT":       "1",
			"WEBCONTENT_LOG_LEVEL":    "debug",
			"WEBCONTENT_PREVIEW_ADDR": "0.0.0.0:9000",
		}
		cfg, err := loadEnvConfig(func(k string) string { return vars[k] })
		if err != nil {
			t.Fatalf("loadEnvConfig() unexpected error: %v", err)
		}
		if cfg.ConfigPath != "ci" || cfg.LogLevel != "debug" || cfg.PreviewAddr != "0.0.0.0:9000" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.Strict == nil || !*cfg.Strict {
			t.Errorf("Strict = %v, want true", cfg.Strict)
		}
	})

	t.Run("unset strict stays nil", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEnvConfig(func(string) string { return "" })
		if err != nil {
			t.Fatalf("loadEnvConfig() unexpected error: %v", err)
		}
		if cfg.Strict != nil {
			t.Errorf("Strict = %v, want nil", *cfg.Strict)
		}
	})

	t.Run("invalid strict", func(t *testing.T) {
		t.Parallel()

		_, err := loadEnvConfig(func(k string) string {
			if k == "WEBCONTENT_STRICT" {
				return "sometimes"
			}
			return ""
		})
		if !errors.Is(err, ErrUsage) {
			t.Errorf("loadEnvConfig() error = %v, want ErrUsage", err)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"WEBCONTENT_STRICT=1",
		"WEBCONTENT_STRICTT=1",
		"WEBCONTENT_LOGLEVEL=debug",
		"HOME=/root",
	})

	out := buf.String()
	for _, want := range []string{"WEBCONTENT_STRICTT", "WEBCONTENT_LOGLEVEL"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing warning for %s in %q", want, out)
		}
	}
	if strings.Contains(out, "WEBCONTENT_STRICT ") || strings.Contains(out, "HOME") {
		t.Errorf("unexpected warning in %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	strict := true
	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{
		Strict:      &strict,
		LogLevel:    "INFO",
		PreviewAddr: "localhost:3000",
	}, cfg)

	if !cfg.Strict {
		t.Error("Strict should be true")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Preview.Addr != "localhost:3000" {
		t.Errorf("Preview.Addr = %q", cfg.Preview.Addr)
	}

	disabled := false
	applyEnvConfig(&envConfig{Strict: &disabled}, cfg)
	if cfg.Strict {
		t.Error("WEBCONTENT_STRICT=false should override a true value")
	}
}
