package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

// ErrHeaderRender indicates the header template failed to execute.
var ErrHeaderRender = errors.New("header template rendering failed")

// Fixed names used in the generated header.
const (
	HeaderGuard      = "WEB_CONTENT_H"
	HeaderInclude    = "pgmspace.h"
	ArrayName        = "INDEX_HTML"
	StorageAttribute = "PROGMEM"
)

// HeaderData holds the values substituted into the header template.
type HeaderData struct {
	Guard      string
	Include    string
	Identifier string
	Attribute  string
	Literal    string // already escaped
}

// NewHeaderData returns the fixed header values around literal.
func NewHeaderData(literal string) *HeaderData {
	return &HeaderData{
		Guard:      HeaderGuard,
		Include:    HeaderInclude,
		Identifier: ArrayName,
		Attribute:  StorageAttribute,
		Literal:    literal,
	}
}

// HeaderRenderer renders the guarded PROGMEM declaration.
type HeaderRenderer struct {
	tmpl *template.Template
}

// NewHeaderRenderer creates a HeaderRenderer from template content.
// Returns error if the template cannot be parsed.
func NewHeaderRenderer(tmplContent string) (*HeaderRenderer, error) {
	tmpl, err := template.New("header").Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing header template: %w", err)
	}

	return &HeaderRenderer{tmpl: tmpl}, nil
}

// Render executes the template with data.
func (h *HeaderRenderer) Render(data *HeaderData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil data", ErrHeaderRender)
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHeaderRender, err)
	}

	return buf.String(), nil
}
