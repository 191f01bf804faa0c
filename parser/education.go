package parser

import (
	"regexp"
	"strings"

	"github.com/resumelens/backend/models"
)

// Structured education entry: "Degree, Institution, MM/YYYY - MM/YYYY".
var educationEntry = regexp.MustCompile(
	`(?i)(?P<degree>(?:bachelor|master|phd|doctor|b\.s\.|m\.s\.|ph\.d\.|b\.a\.|m\.a\.|m\.b\.a\.|b\.tech|m\.tech)[\w\s.,'()-]*?),\s*` +
		`(?P<institution>[\w\s&.,'()-]+?),\s*` +
		`(?P<dates>\d{1,2}/\d{4}\s*[-–]\s*(?:\d{1,2}/\d{4}|present))`)

// Keywords that mark a line as degree-bearing during the fallback scan.
var degreeKeywords = []string{
	"Bachelor", "Master", "PhD", "Doctor",
	"B.S.", "M.S.", "Ph.D.", "B.A.", "M.A.", "M.B.A.",
	"B.Tech", "M.Tech",
}

var yearDigits = regexp.MustCompile(`\b\d{4}\b`)

// ExtractEducation parses education history out of resume text. Like
// ExtractExperience it tries the structured pattern on the education section
// body first, then falls back to a keyword-driven line scan.
func ExtractEducation(text string) []models.EducationEntry {
	body, ok := FirstSection(text, SectionEducation)
	if !ok {
		return []models.EducationEntry{}
	}

	matches := educationEntry.FindAllStringSubmatch(body, -1)
	if len(matches) > 0 {
		entries := make([]models.EducationEntry, 0, len(matches))
		for _, m := range matches {
			entries = append(entries, models.EducationEntry{
				Degree:      strings.TrimSpace(m[1]),
				Institution: strings.TrimSpace(m[2]),
				Dates:       strings.TrimSpace(m[3]),
			})
		}
		return entries
	}
	return scanEducationLines(body)
}

func hasDegreeKeyword(line string) bool {
	for _, kw := range degreeKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// scanEducationLines groups free-form education lines into entries: a line
// mentioning a degree keyword starts a new entry, the following line is taken
// as the institution, and the first year-bearing line after that as the dates.
func scanEducationLines(body string) []models.EducationEntry {
	entries := []models.EducationEntry{}
	var cur *models.EducationEntry

	flush := func() {
		if cur != nil && cur.Degree != "" {
			entries = append(entries, *cur)
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasDegreeKeyword(line):
			flush()
			cur = &models.EducationEntry{Degree: line}
		case cur == nil:
			cur = &models.EducationEntry{Institution: line}
		case cur.Institution == "":
			cur.Institution = line
		case cur.Dates == "" && yearDigits.MatchString(line):
			cur.Dates = line
		}
	}
	flush()
	return entries
}
