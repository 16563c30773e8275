package prompt

import (
	"fmt"
	"strings"

	"github.com/gitdraft/gitdraft/internal/analyze"
)

// langsLine renders "go×3, docs×1" style language counts, "n/a" when empty.
func langsLine(a *analyze.Analysis) string {
	var parts []string
	for _, e := range a.Languages.MostCommon(0) {
		parts = append(parts, fmt.Sprintf("%s×%d", strings.ToLower(e.Key), e.Count))
	}
	if len(parts) == 0 {
		return "n/a"
	}
	return strings.Join(parts, ", ")
}

// changeTypesLine renders "fix(2), test(1)" style tag counts, "n/a" when empty.
func changeTypesLine(a *analyze.Analysis) string {
	var parts []string
	for _, e := range a.Signals.Tags.MostCommon(0) {
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Key, e.Count))
	}
	if len(parts) == 0 {
		return "n/a"
	}
	return strings.Join(parts, ", ")
}

// writeContext emits the shared Context block.
func writeContext(b *strings.Builder, sourceLabel string, a *analyze.Analysis) {
	b.WriteString("Context\n")
	fmt.Fprintf(b, "- Source of changes: %s\n", sourceLabel)
	fmt.Fprintf(b, "- Detected languages/files: %s\n", langsLine(a))
	fmt.Fprintf(b, "- Detected change types: %s\n", changeTypesLine(a))
	fmt.Fprintf(b, "- Heuristic title suggestion: %q\n", SuggestTitle(a, TitleMaxLen))
}

const commitRules = `You are an expert release engineer.

Draft a Git commit message for the repository %q. Follow these rules:

- **Summary**: one line ≤ 72 chars. Prefer a conventional type if clear (feat, fix, refactor, docs, test, build, chore, perf, security).
- **Description**: 4–8 bullets. Each bullet should be a concrete change or impact, optionally citing key files/modules.
- Keep language concise and action-oriented.
- Avoid secrets. Do not include tokens, passwords, or private keys in the message.

`

const commitFormat = `
Now produce ONLY this format:

Summary: <your single-line title>
Description:
- <bullet 1>
- <bullet 2>
- <bullet 3>
- <bullet 4>

Diff (secret-scrubbed, may be truncated)

`

// BuildCommit renders the commit-message prompt around the safe diff body.
func BuildCommit(repoName, sourceLabel string, a *analyze.Analysis, safeDiff string) string {
	var b strings.Builder
	fmt.Fprintf(&b, commitRules, repoName)
	writeContext(&b, sourceLabel, a)
	b.WriteString(commitFormat)
	b.WriteString(safeDiff)
	b.WriteString("\n")
	return b.String()
}
