package pipeline

import "strings"

// MinifyJS trims every line of a script and drops the blank ones.
// Trimming uses the same whitespace set as MinifyCSS.
// Lines are rejoined with "\n" so automatic semicolon insertion behaves
// exactly as in the source. Nothing else is touched: comments, strings and
// identifiers pass through.
func MinifyJS(js string) string {
	lines := strings.Split(js, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimFunc(line, isSpace); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
