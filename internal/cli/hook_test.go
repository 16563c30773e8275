package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHookScript(t *testing.T) {
	t.Parallel()

	script := generateHookScript(false)
	assert.True(t, strings.HasPrefix(script, hookMarkerStart))
	assert.Contains(t, script, "gitdraft commit")
	assert.NotContains(t, script, "--unstaged")
	assert.Contains(t, script, hookMarkerEnd)
	// Prompt generation must never block the commit.
	assert.NotContains(t, script, "exit 1")
}

func TestGenerateHookScript_Unstaged(t *testing.T) {
	t.Parallel()

	script := generateHookScript(true)
	assert.Contains(t, script, "gitdraft commit --unstaged")
}

func TestReplaceHookSection_Append(t *testing.T) {
	t.Parallel()

	existing := "#!/bin/sh\necho existing hook\n"
	section := generateHookScript(false)
	result := replaceHookSection(existing, section)

	assert.Contains(t, result, "echo existing hook")
	assert.Contains(t, result, hookMarkerStart)
	assert.Equal(t, 1, strings.Count(result, hookMarkerStart))
}

func TestReplaceHookSection_Replace(t *testing.T) {
	t.Parallel()

	existing := "#!/bin/sh\necho before\n" + generateHookScript(false) + "echo after\n"
	updated := replaceHookSection(existing, generateHookScript(true))

	assert.Contains(t, updated, "echo before")
	assert.Contains(t, updated, "echo after")
	assert.Contains(t, updated, "--unstaged")
	assert.Equal(t, 1, strings.Count(updated, hookMarkerStart))
}

func TestRemoveHookSection(t *testing.T) {
	t.Parallel()

	existing := "#!/bin/sh\necho keep me\n" + generateHookScript(false)
	result := removeHookSection(existing)

	assert.Contains(t, result, "echo keep me")
	assert.NotContains(t, result, hookMarkerStart)
	assert.NotContains(t, result, "gitdraft commit")
}

func TestRemoveHookSection_NoSection(t *testing.T) {
	t.Parallel()

	existing := "#!/bin/sh\necho unrelated\n"
	assert.Equal(t, existing, removeHookSection(existing))
}

func TestHookSection_RoundTrip(t *testing.T) {
	t.Parallel()

	original := "#!/bin/sh\nmake lint\n"
	withHook := replaceHookSection(original, generateHookScript(false))
	require.Contains(t, withHook, hookMarkerStart)

	restored := removeHookSection(withHook)
	assert.Equal(t, original, restored)
}
