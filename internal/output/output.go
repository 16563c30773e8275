package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WritePrompt writes text to path, returning the absolute path written.
// A path of "-" writes to stdout and returns "-".
func WritePrompt(text, path string) (string, error) {
	if path == "-" {
		if _, err := io.WriteString(os.Stdout, text); err != nil {
			return "", fmt.Errorf("writing prompt to stdout: %w", err)
		}
		return "-", nil
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, text); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
