package pipeline

import "strings"

// Markup references replaced by inline content.
const (
	StylesheetTag = `<link rel="stylesheet" href="style.css">`
	ScriptTag     = `<script src="app.js"></script>`
)

// Inlined reports which references were found and replaced.
type Inlined struct {
	CSS bool
	JS  bool
}

// Complete returns true if both the stylesheet and the script were inlined.
func (i Inlined) Complete() bool {
	return i.CSS && i.JS
}

// Missing returns the references that were not found, in document order.
func (i Inlined) Missing() []string {
	var missing []string
	if !i.CSS {
		missing = append(missing, StylesheetTag)
	}
	if !i.JS {
		missing = append(missing, ScriptTag)
	}
	return missing
}

// InlineAssets replaces the first stylesheet reference with a <style> block
// holding css, then the first script reference with a <script> block holding
// js. A reference absent from htmlContent leaves the markup unchanged for
// that asset; the returned Inlined records what happened.
func InlineAssets(htmlContent, css, js string) (string, Inlined) {
	var inlined Inlined

	if strings.Contains(htmlContent, StylesheetTag) {
		htmlContent = strings.Replace(htmlContent, StylesheetTag, "<style>"+css+"</style>", 1)
		inlined.CSS = true
	}

	if strings.Contains(htmlContent, ScriptTag) {
		htmlContent = strings.Replace(htmlContent, ScriptTag, "<script>"+js+"</script>", 1)
		inlined.JS = true
	}

	return htmlContent, inlined
}
