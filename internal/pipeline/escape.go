package pipeline

import "strings"

// EscapeCString makes s safe to place between double quotes in C source.
//
//	\   -> \\
//	"   -> \"
//	LF  -> \n
//	CR  -> (dropped)
//	TAB -> \t
//
// All other bytes, including multi-byte UTF-8 sequences, are copied as is.
func EscapeCString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			// dropped
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
