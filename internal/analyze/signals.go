package analyze

import (
	"regexp"
	"strings"
)

// maxExamplesPerPath caps how many matching text snippets are retained per
// file path.
const maxExamplesPerPath = 3

// keywordRule pairs a compiled pattern with the change-intent tag it votes
// for. Rules are evaluated in order and are not mutually exclusive: one
// line can legitimately signal both a fix and a test change.
type keywordRule struct {
	re  *regexp.Regexp
	tag string
}

// keywordRules are word-boundary heuristics over file paths and diff lines.
var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)\bfix(e[sd])?\b|\bbug(s)?\b`), "fix"},
	{regexp.MustCompile(`(?i)\brefactor|cleanup|restructure\b`), "refactor"},
	{regexp.MustCompile(`(?i)\bfeat(ure)?\b|\badd(ed)?\b|\bimplement(ed)?\b`), "feat"},
	{regexp.MustCompile(`(?i)\bperf(ormance)?\b|\boptimi[sz]e(d)?\b`), "perf"},
	{regexp.MustCompile(`(?i)\bdoc(s|umentation)?\b|\breadme\b`), "docs"},
	{regexp.MustCompile(`(?i)\btest(s|ing)?\b|\bunit[- ]?test\b|\bci\b`), "test"},
	{regexp.MustCompile(`(?i)\bbuild|pipeline|ci/cd|github actions|workflow\b`), "build"},
	{regexp.MustCompile(`(?i)\bsec(urity)?\b|\bsecret(s)?\b|\bvuln`), "security"},
	{regexp.MustCompile(`(?i)\bchore\b|\bdeps?\b|\bdependency\b|\bupgrade\b|\bupdate\b`), "chore"},
}

// tagPriority orders tags for ConventionalPrefix: defect and security
// signals outrank feature and process signals when a change set carries
// several.
var tagPriority = []string{
	"fix", "security", "feat", "perf", "refactor", "build", "test", "docs", "chore",
}

// SignalSet accumulates change-intent tag counts plus example snippets per
// originating file path. Counts only ever grow.
type SignalSet struct {
	Tags     *Counter
	Examples map[string][]string
}

// NewSignalSet returns an empty SignalSet.
func NewSignalSet() *SignalSet {
	return &SignalSet{
		Tags:     NewCounter(),
		Examples: make(map[string][]string),
	}
}

// Consider scans text against every keyword rule, incrementing each matching
// tag. When path is non-empty, the trimmed text is retained as an example
// for that path, up to maxExamplesPerPath entries.
func (s *SignalSet) Consider(text, path string) {
	for _, rule := range keywordRules {
		if !rule.re.MatchString(text) {
			continue
		}
		s.Tags.Add(rule.tag)
		if path != "" && len(s.Examples[path]) < maxExamplesPerPath {
			s.Examples[path] = append(s.Examples[path], strings.TrimSpace(text))
		}
	}
}

// ConventionalPrefix returns the dominant tag by fixed priority, or "" when
// nothing matched.
func (s *SignalSet) ConventionalPrefix() string {
	for _, tag := range tagPriority {
		if s.Tags.Get(tag) > 0 {
			return tag
		}
	}
	return ""
}
