package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey prepares a word for lookup:
//   - trims leading/trailing whitespace (including the ideographic space)
//   - composes to Unicode NFC, so "か" + U+3099 becomes "が"
//
// Case and inner spacing are preserved.
func NormalizeKey(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return norm.NFC.String(text)
}
