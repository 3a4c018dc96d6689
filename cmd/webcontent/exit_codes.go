package main

import (
	"errors"
	"os"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/config"
)

// Exit codes for the webcontent CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Header regenerated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Source missing or unreadable, header not writable
	ExitContent = 4 // Source not UTF-8, reference tag missing in strict mode
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, webcontent.ErrInvalidEncoding) ||
		errors.Is(err, webcontent.ErrTagNotFound) {
		return ExitContent
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, webcontent.ErrSourceNotFound) ||
		errors.Is(err, webcontent.ErrSourceRead) ||
		errors.Is(err, webcontent.ErrWriteHeader) ||
		errors.Is(err, webcontent.ErrInvalidRoot) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
