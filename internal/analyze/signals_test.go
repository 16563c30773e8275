package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsider_SingleTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		tag  string
	}{
		{"fix keyword", "fix null pointer in parser", "fix"},
		{"fixed keyword", "fixed the flaky retry loop", "fix"},
		{"bug keyword", "resolve bug with empty slices", "fix"},
		{"refactor keyword", "refactor session handling", "refactor"},
		{"cleanup keyword", "cleanup of leftover files", "refactor"},
		{"feature keyword", "feature flag for new importer", "feat"},
		{"implement keyword", "implement retry backoff", "feat"},
		{"perf keyword", "perf tuning for hot path", "perf"},
		{"optimize keyword", "optimize allocation in encoder", "perf"},
		{"optimise spelling", "optimise the cache layout", "perf"},
		{"docs keyword", "docs for the export API", "docs"},
		{"readme keyword", "expand readme with examples", "docs"},
		{"test keyword", "tests for the tokenizer", "test"},
		{"ci keyword", "ci matrix for windows", "test"},
		{"pipeline keyword", "pipeline cache for artifacts", "build"},
		{"workflow keyword", "tighten the release workflow", "build"},
		{"security keyword", "security review of login flow", "security"},
		{"vuln keyword", "patch vulnerability in parser", "security"},
		{"deps keyword", "bump deps to latest", "chore"},
		{"upgrade keyword", "upgrade toolchain image", "chore"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSignalSet()
			s.Consider(tt.text, "")
			assert.Positive(t, s.Tags.Get(tt.tag), "text %q should signal %q", tt.text, tt.tag)
		})
	}
}

func TestConsider_CaseInsensitive(t *testing.T) {
	t.Parallel()

	s := NewSignalSet()
	s.Consider("FIX THE BUILD", "")
	assert.Positive(t, s.Tags.Get("fix"))
	assert.Positive(t, s.Tags.Get("build"))
}

func TestConsider_MultipleTagsPerText(t *testing.T) {
	t.Parallel()

	// Tags are not mutually exclusive: one line can carry several intents.
	s := NewSignalSet()
	s.Consider("fix bug and add tests for security module", "")
	assert.Equal(t, 1, s.Tags.Get("fix"))
	assert.Equal(t, 1, s.Tags.Get("feat")) // "add"
	assert.Equal(t, 1, s.Tags.Get("test"))
	assert.Equal(t, 1, s.Tags.Get("security"))
}

func TestConsider_NoMatch(t *testing.T) {
	t.Parallel()

	s := NewSignalSet()
	s.Consider("rename variable for clarity", "")
	assert.Equal(t, 0, s.Tags.Len())
	assert.Equal(t, "", s.ConventionalPrefix())
}

func TestConsider_ExampleCap(t *testing.T) {
	t.Parallel()

	s := NewSignalSet()
	for i := 0; i < 5; i++ {
		s.Consider("  fix the parser  ", "src/parser.go")
	}
	require.Len(t, s.Examples["src/parser.go"], maxExamplesPerPath)
	assert.Equal(t, "fix the parser", s.Examples["src/parser.go"][0], "examples are trimmed")
}

func TestConsider_NoExampleWithoutPath(t *testing.T) {
	t.Parallel()

	s := NewSignalSet()
	s.Consider("fix the parser", "")
	assert.Empty(t, s.Examples)
}

func TestConventionalPrefix_Priority(t *testing.T) {
	t.Parallel()

	// Defect and security signals outrank feature/process signals.
	s := NewSignalSet()
	s.Consider("add feature docs and tests", "")
	s.Consider("fix crash on empty input", "")
	assert.Equal(t, "fix", s.ConventionalPrefix())

	s2 := NewSignalSet()
	s2.Consider("rotate leaked secret", "")
	s2.Consider("add new endpoint", "")
	assert.Equal(t, "security", s2.ConventionalPrefix())

	s3 := NewSignalSet()
	s3.Consider("update docs", "")
	assert.Equal(t, "docs", s3.ConventionalPrefix())
}
