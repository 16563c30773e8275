package analyze

import (
	"strconv"
	"strings"
)

// parseCount converts one numstat count field. Git reports "-" for binary
// files; that and any other non-integer field deliberately parse as zero so
// odd tool output never blocks prompt generation.
func parseCount(field string) int {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseNumstat parses numstat text into FileChange entries plus running
// added/deleted totals. Each line must split into exactly three
// tab-separated fields (added, deleted, path); anything else is skipped.
func ParseNumstat(numstat string) (files []FileChange, added, deleted int) {
	for _, line := range strings.Split(numstat, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			continue
		}
		fc := FileChange{
			Path:     parts[2],
			Added:    parseCount(parts[0]),
			Deleted:  parseCount(parts[1]),
			Category: Classify(parts[2]),
		}
		added += fc.Added
		deleted += fc.Deleted
		files = append(files, fc)
	}
	return files, added, deleted
}

// Summarize builds the full Analysis from raw numstat and patch text. File
// paths are scanned once each for intent signals; patch content is scanned
// per added/removed line, skipping the +++/--- file headers and context
// lines.
func Summarize(numstat, patch string) *Analysis {
	files, added, deleted := ParseNumstat(numstat)

	langs := NewCounter()
	for _, f := range files {
		langs.Add(f.Category)
	}

	signals := NewSignalSet()
	for _, f := range files {
		signals.Consider(f.Path, f.Path)
	}
	for _, line := range strings.Split(patch, "\n") {
		if !strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "-") {
			continue
		}
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		signals.Consider(line, "")
	}

	return &Analysis{
		Files:     files,
		Languages: langs,
		Added:     added,
		Deleted:   deleted,
		Signals:   signals,
	}
}
