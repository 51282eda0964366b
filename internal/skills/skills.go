// Package skills maps free-text skill labels and LLM-produced gap phrases
// to a small canonical vocabulary.
package skills

import "strings"

// aliases maps common shorthand labels to their canonical skill names.
var aliases = map[string]string{
	"py":      "python",
	"python3": "python",
	"js":      "javascript",
	"node":    "javascript",
	"ts":      "typescript",
	"golang":  "go",
	"mongo":   "mongodb",
	"pg":      "postgresql",
}

// Normalize lowercases a skill label and resolves known aliases.
// Unknown labels pass through lowercased unchanged.
func Normalize(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := aliases[l]; ok {
		return canonical
	}
	return l
}

// gapSkill associates a canonical skill with the substrings that trigger it
// in free-text gap descriptions.
type gapSkill struct {
	name     string
	keywords []string
}

// gapTable is scanned in order; the first skill with a matching keyword wins.
// The order is deterministic but not contractual across skills that happen
// to share a keyword.
var gapTable = []gapSkill{
	{"syntax", []string{"syntax", "indentation", "compile", "error"}},
	{"loops", []string{"loop", "iteration", "for", "while"}},
	{"functions", []string{"function", "encapsulation", "def"}},
	{"variables", []string{"variable", "naming", "identifier"}},
	{"readability", []string{"readability", "clean", "robust"}},
}

// GapToSkill scans a free-text gap description for canonical skill keywords.
// Matching is case-insensitive substring containment. Returns ok=false when
// no keyword matches; callers must discard such gaps rather than inserting
// free text as a skill name.
func GapToSkill(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, gs := range gapTable {
		for _, kw := range gs.keywords {
			if strings.Contains(t, kw) {
				return gs.name, true
			}
		}
	}
	return "", false
}
