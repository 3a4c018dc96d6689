package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

// HeaderTemplateName names the built-in template for WebContent.h.
const HeaderTemplateName = "webcontent"

// EmbeddedLoader loads templates from the embedded filesystem.
// Implements TemplateLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a header template from embedded assets by name.
// The name should not include the .h.tmpl extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".h.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
