package analyze

import (
	"path"
	"strings"
)

// categoryOther is returned for paths with no usable extension.
const categoryOther = "Other"

// extCategories maps known lowercase extensions to display categories.
var extCategories = map[string]string{
	"py":         "Python",
	"ts":         "TypeScript",
	"tsx":        "TypeScript",
	"js":         "JavaScript",
	"jsx":        "JavaScript",
	"java":       "Java",
	"cs":         "C#",
	"go":         "Go",
	"rb":         "Ruby",
	"php":        "PHP",
	"rs":         "Rust",
	"kt":         "Kotlin",
	"swift":      "Swift",
	"css":        "Styles",
	"scss":       "Styles",
	"sass":       "Styles",
	"html":       "HTML",
	"htm":        "HTML",
	"yml":        "YAML",
	"yaml":       "YAML",
	"json":       "JSON",
	"md":         "Docs",
	"sh":         "Shell",
	"bash":       "Shell",
	"sql":        "SQL",
	"dockerfile": "Docker",
}

// Classify maps a file path to a coarse category based on the extension of
// its final segment. Unknown extensions become the uppercased extension
// itself; paths with no extension (including bare dotfiles like ".env")
// classify as "Other". Classify never fails.
func Classify(p string) string {
	base := path.Base(strings.ToLower(p))
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		return categoryOther
	}
	ext := base[idx+1:]
	if cat, ok := extCategories[ext]; ok {
		return cat
	}
	return strings.ToUpper(ext)
}
