package parser

import (
	"regexp"
	"strings"

	"github.com/resumelens/backend/models"
)

// Structured experience entry: "Company, Title, MM/YYYY - MM/YYYY" with an
// optional free-text description until the next entry.
var experienceEntry = regexp.MustCompile(
	`(?i)(?P<company>[\w\s&.,'()-]+?),\s*(?P<title>[\w\s&.,'()/-]+?),\s*` +
		`(?P<dates>\d{1,2}/\d{4}\s*[-–]\s*(?:\d{1,2}/\d{4}|present))`)

// Loose year range used by the line-scan fallback, e.g. "2019 - 2023" or
// "2021 - Present".
var dateRange = regexp.MustCompile(`(?i)\b\d{4}\s*[-–]\s*(?:\d{4}|present)\b`)

// ExtractExperience parses work history out of resume text. The experience
// section body is matched against the structured entry pattern first; when
// that yields nothing, a line-by-line scan groups lines around date ranges.
// Missing section means no experience: an empty slice, never nil.
func ExtractExperience(text string) []models.ExperienceEntry {
	body, ok := FirstSection(text, SectionExperience)
	if !ok {
		return []models.ExperienceEntry{}
	}
	if entries := parseStructuredExperience(body); len(entries) > 0 {
		return entries
	}
	return scanExperienceLines(body)
}

func parseStructuredExperience(body string) []models.ExperienceEntry {
	locs := experienceEntry.FindAllStringSubmatchIndex(body, -1)
	entries := make([]models.ExperienceEntry, 0, len(locs))
	for i, loc := range locs {
		group := func(g int) string {
			return strings.TrimSpace(body[loc[2*g]:loc[2*g+1]])
		}
		// description runs from the end of this match to the start of the next
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		entries = append(entries, models.ExperienceEntry{
			Company:     group(1),
			Title:       group(2),
			Dates:       group(3),
			Description: strings.TrimSpace(body[loc[1]:end]),
		})
	}
	return entries
}

// scanExperienceLines is the fallback for experience sections that don't
// follow the "Company, Title, Dates" convention. A line containing a date
// range starts a new entry; surrounding lines fill in title, company and
// description in that order.
func scanExperienceLines(body string) []models.ExperienceEntry {
	entries := []models.ExperienceEntry{}
	var cur *models.ExperienceEntry

	flush := func() {
		if cur != nil && cur.Title != "" {
			entries = append(entries, *cur)
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if dateRange.MatchString(line) {
			flush()
			cur = &models.ExperienceEntry{Dates: line}
			continue
		}
		switch {
		case cur == nil:
			cur = &models.ExperienceEntry{Title: line}
		case cur.Title == "":
			cur.Title = line
		case cur.Company == "":
			cur.Company = line
		case cur.Description == "":
			cur.Description = line
		default:
			cur.Description += " " + line
		}
	}
	flush()
	return entries
}
