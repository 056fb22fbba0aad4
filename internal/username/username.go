// Package username normalizes and validates player-supplied names.
package username

import "unicode"

// Normalize truncates s to maxLen runes and replaces every character that
// is neither blank nor graphical with an underscore, so the result is
// always safe to embed in a single line of the wire protocol.
func Normalize(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	for i, r := range runes {
		if !isBlank(r) && !isGraphic(r) {
			runes[i] = '_'
		}
	}
	return string(runes)
}

// isGraphic reports whether r has a visible glyph, matching C's isgraph:
// printable and not a space.
func isGraphic(r rune) bool {
	return unicode.IsPrint(r) && r != ' '
}

// isBlank reports whether r is a space or a tab, matching C's isblank.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsEmpty reports whether str is empty or consists entirely of blank
// characters (spaces and tabs). Such a name is rejected, before
// normalization, and the player may not join.
func IsEmpty(str string) bool {
	for _, r := range str {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
