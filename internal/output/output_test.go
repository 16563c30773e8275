package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrompt_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompt.md")
	written, err := WritePrompt("prompt body\n", path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "prompt body\n", string(data))
}

func TestWritePrompt_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompt.md")
	_, err := WritePrompt("first\n", path)
	require.NoError(t, err)
	_, err = WritePrompt("second\n", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWritePrompt_BadDir(t *testing.T) {
	t.Parallel()

	_, err := WritePrompt("x", filepath.Join(t.TempDir(), "missing", "prompt.md"))
	assert.Error(t, err)
}
