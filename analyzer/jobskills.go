package analyzer

import (
	"regexp"
	"strings"
)

// Labeled requirement sections in job postings.
var jobSkillSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:skills|requirements|qualifications|what you(?:'ll| will) need)[:\s]+(.+?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?is)technical skills[:\s]+(.+?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?is)you have[:\s]+(.+?)(?:\n\n|\z)`),
}

// Bullet items within a requirement section.
var bulletItem = regexp.MustCompile(`[•\-*]\s*([^•\-*\n]+)`)

// Requirement phrases scanned across the whole posting, each capturing the
// skill that follows.
var jobSkillPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)experience (?:with|in) ([^,.]+)`),
	regexp.MustCompile(`(?i)knowledge of ([^,.]+)`),
	regexp.MustCompile(`(?i)familiarity with ([^,.]+)`),
	regexp.MustCompile(`(?i)proficiency in ([^,.]+)`),
	regexp.MustCompile(`(?i)proficient (?:with|in) ([^,.]+)`),
	regexp.MustCompile(`(?i)understanding of ([^,.]+)`),
}

// Boilerplate endings stripped from extracted requirements.
var requirementSuffix = regexp.MustCompile(`(?i)(?:is required|required|a must|a plus|preferred)$`)

// ExtractJobSkills pulls required skills out of a job description. Labeled
// sections are split on bullets (or commas when no bullets exist), then
// requirement phrases like "experience with X" are collected from the full
// text. Results are trimmed of boilerplate suffixes, de-duplicated and
// filtered to tokens longer than two characters.
func ExtractJobSkills(jobDescription string) []string {
	if jobDescription == "" {
		return []string{}
	}

	var skills []string
	for _, re := range jobSkillSectionPatterns {
		m := re.FindStringSubmatch(jobDescription)
		if m == nil {
			continue
		}
		body := m[1]
		if items := bulletItem.FindAllStringSubmatch(body, -1); len(items) > 0 {
			for _, it := range items {
				skills = append(skills, strings.TrimSpace(it[1]))
			}
		} else {
			for _, part := range strings.Split(body, ",") {
				skills = append(skills, strings.TrimSpace(part))
			}
		}
	}

	for _, re := range jobSkillPhrases {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			skills = append(skills, strings.TrimSpace(m[1]))
		}
	}

	cleaned := []string{}
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(requirementSuffix.ReplaceAllString(skill, ""))
		if len(skill) > 2 && !seen[skill] {
			seen[skill] = true
			cleaned = append(cleaned, skill)
		}
	}
	return cleaned
}
