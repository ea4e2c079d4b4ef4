package textutil

import "strings"

// SanitizeToken converts a string to a lowercase token safe for filenames and
// CDN paths. Letters are lowercased, digits and hyphens/underscores are kept,
// runs of anything else collapse to a single underscore. Returns "unknown"
// for input with no usable characters.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	b.Grow(len(value))
	lastUnderscore := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastUnderscore = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == '-' || r == '_':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}

// AudioKey derives the stable inventory key for a narration clip from its
// display text and language tag. The same text and language always produce
// the same key, so rebuilding the inventory is idempotent.
func AudioKey(text, lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = "en"
	}
	return SanitizeToken(text) + "_" + lang
}

// NormalizeNarration lowercases and trims a display string for
// case-insensitive de-duplication of narration text.
func NormalizeNarration(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
