package parser

import (
	"regexp"
	"strings"
)

// Skill tokens within a section body are separated by commas, bullets, pipes,
// slashes or newlines.
var skillSeparator = regexp.MustCompile(`[,•|/\n]+`)

// commonSkills is the fallback vocabulary scanned against the whole document
// when no skills section header is present.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "SQL", "HTML", "CSS",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Jenkins",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"Machine Learning", "Deep Learning", "Natural Language Processing", "Computer Vision",
}

var commonSkillPatterns = buildCommonSkillPatterns()

func buildCommonSkillPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(commonSkills))
	for i, skill := range commonSkills {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills pulls the candidate's skill list out of resume text. When one
// or more skills sections exist their bodies are concatenated and split on
// the separator characters; otherwise the whole text is scanned for
// whole-word occurrences of the common-skill vocabulary.
func ExtractSkills(text string) []string {
	if bodies := allSections(text, SectionSkills); len(bodies) > 0 {
		raw := skillSeparator.Split(strings.Join(bodies, " "), -1)
		skills := make([]string, 0, len(raw))
		for _, token := range raw {
			if s := NormalizeSkill(token); s != "" {
				skills = append(skills, s)
			}
		}
		return DedupeSkills(skills)
	}

	found := []string{}
	for i, re := range commonSkillPatterns {
		if re.MatchString(text) {
			found = append(found, commonSkills[i])
		}
	}
	return found
}
