package prompt

import "unicode/utf8"

// truncationMarker is appended on its own line when the diff is cut.
const truncationMarker = "\n… (truncated)"

// MinChars is the floor for the diff character budget; smaller limits are
// clamped up rather than rejected.
const MinChars = 2000

// DefaultMaxChars is the diff character budget when none is configured.
const DefaultMaxChars = 30000

// ClampLimit raises limit to MinChars when it falls below the floor.
func ClampLimit(limit int) int {
	if limit < MinChars {
		return MinChars
	}
	return limit
}

// Truncate caps text to the clamped limit, appending the truncation marker
// when anything was cut. The cut point is a byte offset backed up to the
// nearest rune start, not a line or token boundary: this is a context-window
// budget, not a structural format. Truncate runs on already-scrubbed text so
// the marker can never reintroduce removed secret fragments.
func Truncate(text string, limit int) string {
	limit = ClampLimit(limit)
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationMarker
}
