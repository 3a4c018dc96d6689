package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// cssSpace matches ASCII and Unicode whitespace, including \v, NEL and the
// information separators U+001C to U+001F. isSpace matches the same set.
const cssSpace = `[\s\v\x{85}\p{Z}\x1c-\x1f]`

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

var (
	cssCommentPattern     = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssWhitespacePattern  = regexp.MustCompile(cssSpace + `+`)
	cssPunctuationPattern = regexp.MustCompile(cssSpace + `*([{}:;,])` + cssSpace + `*`)
)

// MinifyCSS compacts a stylesheet without parsing it.
//
// Comments are removed, whitespace runs collapse to one space, spaces around
// { } : ; , are dropped and the result is trimmed. Quoted values containing
// those characters are rewritten too; hand-authored stylesheets must avoid
// them.
func MinifyCSS(css string) string {
	css = cssCommentPattern.ReplaceAllString(css, "")
	css = cssWhitespacePattern.ReplaceAllString(css, " ")
	css = cssPunctuationPattern.ReplaceAllString(css, "${1}")
	return strings.TrimFunc(css, isSpace)
}
