// Package parser extracts structured facts (skills, work experience,
// education) from free-form resume text using regex heuristics. All functions
// are pure: empty or unparseable input yields empty results, never an error.
package parser

import (
	"regexp"
	"strings"
)

// SectionKind identifies a labeled resume section
type SectionKind string

const (
	// SectionSkills is the skills/technologies section
	SectionSkills SectionKind = "skills"
	// SectionExperience is the work experience section
	SectionExperience SectionKind = "experience"
	// SectionEducation is the education section
	SectionEducation SectionKind = "education"
)

// Header keyword lists per section kind. A header must appear at the start of
// a line followed by a colon or whitespace; the section body runs to the next
// blank line or end of text.
var sectionHeaders = map[SectionKind][]string{
	SectionSkills:     {"technical skills", "skills", "technologies", "tools", "languages", "frameworks", "proficiencies"},
	SectionExperience: {"work experience", "experience", "employment", "professional experience"},
	SectionEducation:  {"education", "educational background", "academic background"},
}

var sectionPatterns = buildSectionPatterns()

func buildSectionPatterns() map[SectionKind]*regexp.Regexp {
	patterns := make(map[SectionKind]*regexp.Regexp, len(sectionHeaders))
	for kind, headers := range sectionHeaders {
		patterns[kind] = regexp.MustCompile(`(?ims)^(?:` + strings.Join(headers, "|") + `)[\s:]+(.+?)(?:\n\n|\z)`)
	}
	return patterns
}

// FirstSection returns the body of the first section of the given kind, or
// false when no matching header exists
func FirstSection(text string, kind SectionKind) (string, bool) {
	m := sectionPatterns[kind].FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// allSections returns the bodies of every section of the given kind, in
// document order. Used only for skills, where all matching sections are
// concatenated before splitting.
func allSections(text string, kind SectionKind) []string {
	matches := sectionPatterns[kind].FindAllStringSubmatch(text, -1)
	bodies := make([]string, 0, len(matches))
	for _, m := range matches {
		bodies = append(bodies, m[1])
	}
	return bodies
}
