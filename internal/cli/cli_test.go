package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitdraft/gitdraft/internal/config"
	"github.com/gitdraft/gitdraft/internal/prompt"
)

func TestMaxCharsLimit(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		flag string
		want int
	}{
		{"unset uses config", "", 30000},
		{"valid override", "50000", 50000},
		{"garbage falls back to default", "lots", prompt.DefaultMaxChars},
		{"negative still parses", "-5", -5}, // Truncate clamps to the floor
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagMaxChars = tt.flag
			defer func() { flagMaxChars = "" }()
			assert.Equal(t, tt.want, maxCharsLimit(cfg))
		})
	}
}

func TestSafeDiff_Redacts(t *testing.T) {
	flagNoRedact = false
	defer func() { flagNoRedact = false }()

	cfg := config.Default()
	got := safeDiff(`+password = "hunter2hunter2"`, cfg)
	assert.NotContains(t, got, "hunter2hunter2")
	assert.Contains(t, got, "password=***")
}

func TestSafeDiff_NoRedactFlag(t *testing.T) {
	flagNoRedact = true
	defer func() { flagNoRedact = false }()

	cfg := config.Default()
	raw := `+password = "hunter2hunter2"`
	assert.Equal(t, raw, safeDiff(raw, cfg))
}

func TestSafeDiff_Truncates(t *testing.T) {
	flagMaxChars = "2000"
	defer func() { flagMaxChars = "" }()

	cfg := config.Default()
	got := safeDiff(strings.Repeat("x", 5000), cfg)
	assert.Less(t, len(got), 5000)
	assert.Contains(t, got, "(truncated)")
}

func TestRunRegistersCommands(t *testing.T) {
	// The command tree is assembled in Run; make sure the expected
	// subcommands exist without executing anything.
	rootCmd.AddCommand(commitCmd, prCmd, hookCmd, configCmd, versionCmd)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"commit", "pr", "hook", "config", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
