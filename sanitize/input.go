package sanitize

import "strings"

// DefaultLimit is the truncation limit used when a caller passes a
// non-positive limit to [Clean].
const DefaultLimit = 1000

// denylist holds the characters removed by Clean. It targets the usual
// injection metacharacters; it is a defense-in-depth filter, not an escaping
// scheme, and callers still need contextual output encoding.
const denylist = `<>"'&;`

// Clean truncates raw to at most limit characters, removes every denylist
// character from the truncated text, and trims surrounding whitespace.
// A non-positive limit means [DefaultLimit]. Clean never fails: any input,
// including empty, produces a defined string.
func Clean(raw string, limit int) string {
	if raw == "" {
		return ""
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Truncation counts characters, not bytes, so multibyte input is never
	// cut mid-rune.
	if runes := []rune(raw); len(runes) > limit {
		raw = string(runes[:limit])
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(denylist, r) {
			return -1
		}
		return r
	}, raw)

	return strings.TrimSpace(cleaned)
}

// MaskSecret masks a secret value for safe logging, keeping only the first
// and last two characters of longer values.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
