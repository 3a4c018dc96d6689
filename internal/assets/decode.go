package assets

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// decodeUTF8 rejects invalid UTF-8 and strips a leading byte order mark.
func decodeUTF8(data []byte) (string, error) {
	// The x/text decoder substitutes U+FFFD for bad bytes instead of
	// failing, so validity is checked on the raw input first.
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(decoded), nil
}
