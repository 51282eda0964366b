package fusion

import "strings"

// forbidden are the characters that mark a skill label as leaked
// diagnostic text rather than a real skill name.
const forbidden = ":.(),'"

// ValidSkillLabel reports whether a stored skill label looks like a real
// skill name. Upstream gap extraction can leak full diagnostic sentences
// into the skill field; labels that are empty, longer than three words, or
// contain punctuation are rejected.
func ValidSkillLabel(skill string) bool {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return false
	}

	if len(strings.Fields(s)) > 3 {
		return false
	}

	return !strings.ContainsAny(s, forbidden)
}
