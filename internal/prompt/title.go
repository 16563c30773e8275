package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitdraft/gitdraft/internal/analyze"
)

// titleTopLanguages is how many language categories feed the title subject.
const titleTopLanguages = 3

// TitleMaxLen is the default character bound for a suggested title.
const TitleMaxLen = 72

var whitespaceRun = regexp.MustCompile(`\s+`)

// SuggestTitle derives a short, advisory change title from the analysis. It
// joins the most frequent language categories into a subject, prefixes the
// dominant conventional tag (or a generic "update"), and appends a compact
// stats suffix. The result is whitespace-collapsed and bounded to maxLen
// characters with a single ellipsis when cut. It is embedded in the prompt
// as a hint only, never used as the final title.
func SuggestTitle(a *analyze.Analysis, maxLen int) string {
	var kinds []string
	for _, e := range a.Languages.MostCommon(titleTopLanguages) {
		kinds = append(kinds, strings.ToLower(e.Key))
	}
	subject := "files"
	if len(kinds) > 0 {
		subject = strings.Join(kinds, ", ")
	}

	core := "update " + subject
	if prefix := a.Signals.ConventionalPrefix(); prefix != "" {
		core = prefix + ": " + subject
	}

	var extra []string
	switch {
	case a.Added > 0 && a.Deleted > 0:
		extra = append(extra, fmt.Sprintf("+%d/-%d", a.Added, a.Deleted))
	case a.Added > 0:
		extra = append(extra, fmt.Sprintf("+%d", a.Added))
	case a.Deleted > 0:
		extra = append(extra, fmt.Sprintf("-%d", a.Deleted))
	}
	if len(a.Files) > 0 {
		extra = append(extra, fmt.Sprintf("%d files", len(a.Files)))
	}

	title := core
	if len(extra) > 0 {
		title = fmt.Sprintf("%s (%s)", core, strings.Join(extra, ", "))
	}

	title = strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))
	return shorten(title, maxLen)
}

// shorten bounds s to maxLen characters, replacing the tail with a single
// ellipsis rune when over length.
func shorten(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 1 {
		return ""
	}
	return strings.TrimSpace(string(runes[:maxLen-1])) + "…"
}
