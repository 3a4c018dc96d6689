package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"source not found", fmt.Errorf("%w: data/index.html", webcontent.ErrSourceNotFound), ExitIO},
		{"source read", fmt.Errorf("%w: data/app.js", webcontent.ErrSourceRead), ExitIO},
		{"write header", fmt.Errorf("%w: WebContent.h", webcontent.ErrWriteHeader), ExitIO},
		{"invalid root", fmt.Errorf("%w: nope", webcontent.ErrInvalidRoot), ExitIO},
		{"permission", fmt.Errorf("open: %w", os.ErrPermission), ExitIO},
		{"encoding", fmt.Errorf("data/style.css: %w", webcontent.ErrInvalidEncoding), ExitContent},
		{"tag not found", fmt.Errorf("%w: <script>", webcontent.ErrTagNotFound), ExitContent},
		{"usage", fmt.Errorf("%w: bad", ErrUsage), ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"config length", config.ErrFieldTooLong, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
