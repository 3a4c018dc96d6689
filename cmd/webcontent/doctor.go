package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/assets"
	"github.com/alnah/go-webcontent/internal/fileutil"
	"github.com/alnah/go-webcontent/internal/pipeline"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Root     string       `json:"root"`
	Strict   bool         `json:"strict"`
	Sources  []sourceInfo `json:"sources"`
	Tags     tagInfo      `json:"tags"`
	Output   outputInfo   `json:"output"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// sourceInfo holds the check results for one source file.
type sourceInfo struct {
	Role  string `json:"role"`
	Path  string `json:"path"`
	Found bool   `json:"found"`
	UTF8  bool   `json:"utf8"`
	Bytes int    `json:"bytes"`
}

// tagInfo records which reference tags the markup contains.
type tagInfo struct {
	Checked    bool `json:"checked"`
	Stylesheet bool `json:"stylesheet"`
	Script     bool `json:"script"`
}

// outputInfo holds header destination checks.
type outputInfo struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	f, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(env.Stderr, err)
	}

	s, err := resolveSettings(&f.common, env)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	result := runDoctor(s.root, s.cfg.Strict)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks against root.
func runDoctor(root string, strict bool) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Root:   root,
		Strict: strict,
		Output: outputInfo{Path: filepath.Join(root, webcontent.OutputFile)},
	}

	loader, err := assets.NewFilesystemLoader(root)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Project root unusable: %v", err))
	} else {
		checkSources(result, loader)
	}
	checkOutput(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkSources loads every source and inspects the markup for reference tags.
func checkSources(result *doctorResult, loader assets.SourceLoader) {
	for _, role := range assets.Roles {
		rel, _ := assets.RelPath(role)
		info := sourceInfo{Role: string(role), Path: rel}

		src, err := loader.LoadSource(role)
		switch {
		case err == nil:
			info.Found = true
			info.UTF8 = true
			info.Bytes = len(src.Content)
		case errors.Is(err, assets.ErrInvalidEncoding):
			info.Found = true
			result.Errors = append(result.Errors, fmt.Sprintf("%s is not valid UTF-8", rel))
		case errors.Is(err, assets.ErrSourceNotFound):
			result.Errors = append(result.Errors, fmt.Sprintf("%s not found", rel))
		default:
			info.Found = true
			result.Errors = append(result.Errors, fmt.Sprintf("%s unreadable: %v", rel, err))
		}
		result.Sources = append(result.Sources, info)

		if role == assets.RoleHTML && err == nil {
			checkTags(result, src.Content)
		}
	}
}

// checkTags reports reference tags missing from the markup.
// A missing tag is an error in strict mode and a warning otherwise.
func checkTags(result *doctorResult, markup string) {
	_, inlined := pipeline.InlineAssets(markup, "", "")
	result.Tags = tagInfo{Checked: true, Stylesheet: inlined.CSS, Script: inlined.JS}

	missing := inlined.Missing()
	if len(missing) == 0 {
		return
	}
	msg := "Markup lacks " + strings.Join(missing, " and ") + ", asset will not be inlined"
	if result.Strict {
		result.Errors = append(result.Errors, msg)
	} else {
		result.Warnings = append(result.Warnings, msg)
	}
}

// checkOutput verifies the header can be written next to the data directory.
func checkOutput(result *doctorResult) {
	result.Output.Exists = fileutil.FileExists(result.Output.Path)
	if err := fileutil.CheckDirWritable(result.Root); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Project root not writable: %s", result.Root))
		return
	}
	result.Output.Writable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "webcontent doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sources")
	for _, s := range r.Sources {
		switch {
		case s.Found && s.UTF8:
			fmt.Fprintf(w, "  [OK] %s (%d bytes)\n", s.Path, s.Bytes)
		case s.Found:
			fmt.Fprintf(w, "  [ERROR] %s unusable\n", s.Path)
		default:
			fmt.Fprintf(w, "  [ERROR] %s missing\n", s.Path)
		}
	}
	fmt.Fprintln(w)

	if r.Tags.Checked {
		fmt.Fprintln(w, "Markup")
		printTag(w, r.Strict, r.Tags.Stylesheet, webcontent.StylesheetTag)
		printTag(w, r.Strict, r.Tags.Script, webcontent.ScriptTag)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s writable\n", r.Output.Path)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not writable\n", r.Output.Path)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", msg)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", msg)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printTag prints one reference tag line.
func printTag(w io.Writer, strict, found bool, tag string) {
	switch {
	case found:
		fmt.Fprintf(w, "  [OK] %s\n", tag)
	case strict:
		fmt.Fprintf(w, "  [ERROR] %s missing\n", tag)
	default:
		fmt.Fprintf(w, "  [WARN] %s missing\n", tag)
	}
}
