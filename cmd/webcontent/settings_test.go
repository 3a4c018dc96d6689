package main

// Notes:
// - Priority is checked layer by layer: defaults, config file, environment, flags
// - Config files are referenced by path or looked up by name in the -C root,
//   so the lookup never depends on the cwd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webcontent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestResolveSettings_Priority(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "strict: true\nlog:\n  level: info\npreview:\n  addr: 127.0.0.1:7000\n")

	tests := []struct {
		name       string
		flags      commonFlags
		vars       map[string]string
		wantStrict bool
		wantLevel  string
		wantAddr   string
	}{
		{
			name:      "defaults",
			wantLevel: "warn",
			wantAddr:  "127.0.0.1:8080",
		},
		{
			name:       "config file",
			flags:      commonFlags{config: cfgPath},
			wantStrict: true,
			wantLevel:  "info",
			wantAddr:   "127.0.0.1:7000",
		},
		{
			name:       "config file from environment",
			vars:       map[string]string{"WEBCONTENT_CONFIG": cfgPath},
			wantStrict: true,
			wantLevel:  "info",
			wantAddr:   "127.0.0.1:7000",
		},
		{
			name:  "environment over file",
			flags: commonFlags{config: cfgPath},
			vars: map[string]string{
				"WEBCONTENT_STRICT":       "false",
				"WEBCONTENT_LOG_LEVEL":    "error",
				"WEBCONTENT_PREVIEW_ADDR": "127.0.0.1:7001",
			},
			wantStrict: false,
			wantLevel:  "error",
			wantAddr:   "127.0.0.1:7001",
		},
		{
			name:       "flags over environment",
			flags:      commonFlags{strict: true, verbose: true},
			vars:       map[string]string{"WEBCONTENT_STRICT": "false", "WEBCONTENT_LOG_LEVEL": "error"},
			wantStrict: true,
			wantLevel:  "debug",
			wantAddr:   "127.0.0.1:8080",
		},
		{
			name:      "quiet lowers level",
			flags:     commonFlags{quiet: true},
			wantLevel: "error",
			wantAddr:  "127.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv(tt.vars)
			s, err := resolveSettings(&tt.flags, env)
			if err != nil {
				t.Fatalf("resolveSettings() unexpected error: %v", err)
			}

			if s.cfg.Strict != tt.wantStrict {
				t.Errorf("Strict = %v, want %v", s.cfg.Strict, tt.wantStrict)
			}
			if s.cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", s.cfg.Log.Level, tt.wantLevel)
			}
			if s.cfg.Preview.Addr != tt.wantAddr {
				t.Errorf("Preview.Addr = %q, want %q", s.cfg.Preview.Addr, tt.wantAddr)
			}
			if s.root != "." {
				t.Errorf("root = %q, want %q", s.root, ".")
			}
		})
	}
}

func TestResolveSettings_ConfigNameInRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "webcontent.yaml"), []byte("strict: true\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	env, _, _ := newTestEnv(nil)
	s, err := resolveSettings(&commonFlags{dir: root, config: "webcontent"}, env)
	if err != nil {
		t.Fatalf("resolveSettings() unexpected error: %v", err)
	}
	if s.root != root {
		t.Errorf("root = %q, want %q", s.root, root)
	}
	if !s.cfg.Strict {
		t.Error("Strict = false, want true from config in project root")
	}
}

func TestResolveSettings_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   commonFlags
		vars    map[string]string
		wantErr error
	}{
		{
			name:    "invalid level from environment",
			vars:    map[string]string{"WEBCONTENT_LOG_LEVEL": "loud"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "unparsable config",
			flags:   commonFlags{config: writeConfig(t, "strict: [\n")},
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "unknown config field",
			flags:   commonFlags{config: writeConfig(t, "output: x.h\n")},
			wantErr: config.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv(tt.vars)
			_, err := resolveSettings(&tt.flags, env)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveSettings() error = %v, want %v", err, tt.wantErr)
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exitCodeFor() = %d, want %d", exitCodeFor(err), ExitUsage)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing script",
			err:  fmt.Errorf("%w: data/app.js: no such file", webcontent.ErrSourceNotFound),
			want: "create data/app.js",
		},
		{
			name: "encoding",
			err:  fmt.Errorf("data/style.css: %w", webcontent.ErrInvalidEncoding),
			want: "UTF-8",
		},
		{
			name: "both tags missing",
			err:  fmt.Errorf("%w: %s, %s", webcontent.ErrTagNotFound, webcontent.StylesheetTag, webcontent.ScriptTag),
			want: webcontent.StylesheetTag + " and " + webcontent.ScriptTag,
		},
		{
			name: "write failure",
			err:  fmt.Errorf("%w: WebContent.h: permission denied", webcontent.ErrWriteHeader),
			want: "writable",
		},
		{
			name: "config by name",
			err:  fmt.Errorf("%w: tried ci.yaml, ci.yml, /home/u/.config/go-webcontent/ci.yaml", config.ErrConfigNotFound),
			want: "or create /home/u/.config/go-webcontent/ci.yaml",
		},
		{
			name: "address in use",
			err:  fmt.Errorf("%w: 127.0.0.1:8080", ErrAddrInUse),
			want: "--addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hintFor() = %q, want hint prefix", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want substring %q", got, tt.want)
			}
		})
	}

	if got := hintFor(errors.New("other")); got != "" {
		t.Errorf("hintFor(other) = %q, want empty", got)
	}
}
