package parser

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Leading characters stripped from skill tokens: list bullets, dashes and the
// Unicode replacement character left behind by lossy document conversion.
const bulletCutset = "-• \t�"

// NormalizeSkill canonicalizes one raw skill token: internal whitespace runs
// collapse to a single space, leading bullet characters and surrounding
// whitespace are stripped. Normalizing an already-normalized token is a no-op.
// Returns "" for tokens that are empty after cleanup.
func NormalizeSkill(raw string) string {
	s := whitespaceRun.ReplaceAllString(raw, " ")
	s = strings.TrimLeft(s, bulletCutset)
	return strings.TrimSpace(s)
}

// DedupeSkills removes case-insensitive duplicates, keeping the first
// occurrence's original casing and order
func DedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
