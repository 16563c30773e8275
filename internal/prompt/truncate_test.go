package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_WithinLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a", 2000)
	assert.Equal(t, text, Truncate(text, 2000))
}

func TestTruncate_OverLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a", 5001)
	got := Truncate(text, 5000)
	assert.Equal(t, strings.Repeat("a", 5000)+truncationMarker, got)
}

func TestTruncate_ClampsLowLimits(t *testing.T) {
	t.Parallel()

	// Limits below the floor clamp up instead of failing.
	text := strings.Repeat("b", 3000)
	got := Truncate(text, 10)
	assert.Equal(t, strings.Repeat("b", MinChars)+truncationMarker, got)
}

func TestTruncate_PrefixPreserved(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x", 4000)
	got := Truncate(text, 2500)
	assert.True(t, strings.HasPrefix(got, text[:2500]), "prefix up to the limit is preserved verbatim")
	assert.True(t, strings.HasSuffix(got, truncationMarker))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	t.Parallel()

	// Byte 2000 lands mid-rune; the cut backs up so the output stays
	// valid UTF-8.
	text := strings.Repeat("a", 1999) + strings.Repeat("世", 100)
	got := Truncate(text, 2000)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 1999)+truncationMarker, got)
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinChars, ClampLimit(0))
	assert.Equal(t, MinChars, ClampLimit(1999))
	assert.Equal(t, 2000, ClampLimit(2000))
	assert.Equal(t, 30000, ClampLimit(30000))
}
