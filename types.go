package webcontent

import (
	"unicode/utf8"

	"github.com/alnah/go-webcontent/internal/assets"
	"github.com/alnah/go-webcontent/internal/pipeline"
)

// OutputFile is the generated header, written at the project root.
const OutputFile = "WebContent.h"

// Role identifies one of the three web UI sources.
type Role = assets.Role

// Supported roles.
const (
	RoleHTML = assets.RoleHTML
	RoleCSS  = assets.RoleCSS
	RoleJS   = assets.RoleJS
)

// Reference tags replaced by inline blocks. They must appear verbatim.
const (
	StylesheetTag = pipeline.StylesheetTag
	ScriptTag     = pipeline.ScriptTag
)

// Source is one web UI source file.
type Source = assets.Source

// SourceLoader provides the markup, stylesheet and script.
// Implementations must return errors wrapping ErrSourceNotFound,
// ErrSourceRead or ErrInvalidEncoding so callers can classify failures.
type SourceLoader interface {
	LoadSource(role Role) (Source, error)
}

// Inlined reports which reference tags were replaced.
type Inlined = pipeline.Inlined

// Result contains the output of a generation run.
type Result struct {
	HTML    string  // assembled document, before escaping
	Literal string  // escaped C string body
	Header  string  // full WebContent.h text
	Inlined Inlined // which reference tags were replaced
}

// Size returns the length of the escaped literal in characters.
// This is the figure printed after a successful run.
func (r *Result) Size() int {
	return utf8.RuneCountInString(r.Literal)
}
