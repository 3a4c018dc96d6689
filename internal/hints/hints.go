// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForMissingSource returns a hint for a source file that could not be found.
func ForMissingSource(relPath string) string {
	return format("create " + relPath + " or run from the firmware project root (use -C <dir>)")
}

// ForMissingTags returns a hint listing the markup references that were not
// found and therefore not inlined.
func ForMissingTags(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("data/index.html must contain, verbatim: " + strings.Join(missing, " and "))
}

// ForEncoding returns a hint for sources that are not UTF-8.
func ForEncoding() string {
	return format("save the file as UTF-8")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-webcontent") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForWriteFailure returns a hint for header write errors.
func ForWriteFailure() string {
	return format("check the project directory exists and is writable")
}

// ForAddrInUse returns a hint when the preview port is taken.
func ForAddrInUse() string {
	return format("choose another port with --addr")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
