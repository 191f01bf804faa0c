package analyzer

import (
	"fmt"
	"strings"

	"github.com/resumelens/backend/models"
)

// buildSummary renders the report as human-readable markdown with fixed
// headings. Long lists are truncated: skills to 8, direct matches to 5,
// related matches to 3 (showing at most 2 via-skills each), missing skills
// to 5.
func buildSummary(r *models.Report) string {
	var b strings.Builder

	b.WriteString("# Resume Analysis Summary\n\n")

	b.WriteString("## Candidate Profile\n\n")
	fmt.Fprintf(&b, "* **Skills**: %s\n", strings.Join(limit(r.BasicInfo.Skills, 8), ", "))
	fmt.Fprintf(&b, "* **Experience**: %d years\n", r.BasicInfo.ExperienceYears)
	fmt.Fprintf(&b, "* **Education**: %s\n\n", r.BasicInfo.EducationLevel)

	b.WriteString("## Strengths\n\n")
	for _, s := range r.Analysis.Strengths {
		fmt.Fprintf(&b, "* %s\n", s)
	}
	b.WriteString("\n")

	b.WriteString("## Areas for Improvement\n\n")
	for _, w := range r.Analysis.Weaknesses {
		fmt.Fprintf(&b, "* %s\n", w)
	}
	b.WriteString("\n")

	if r.JobMatch != nil {
		fmt.Fprintf(&b, "## Job Match: %.1f%%\n\n", r.JobMatch.MatchPercentage)

		if len(r.JobMatch.DirectMatches) > 0 {
			b.WriteString("### Direct Skill Matches\n\n")
			for _, skill := range limit(r.JobMatch.DirectMatches, 5) {
				fmt.Fprintf(&b, "* %s\n", skill)
			}
			b.WriteString("\n")
		}

		if len(r.JobMatch.RelatedMatches) > 0 {
			b.WriteString("### Related Skill Matches\n\n")
			related := r.JobMatch.RelatedMatches
			if len(related) > 3 {
				related = related[:3]
			}
			for _, m := range related {
				fmt.Fprintf(&b, "* %s (via %s)\n", m.JobSkill, strings.Join(limit(m.MatchedVia, 2), ", "))
			}
			b.WriteString("\n")
		}

		if len(r.JobMatch.MissingSkills) > 0 {
			b.WriteString("### Missing Skills\n\n")
			for _, skill := range limit(r.JobMatch.MissingSkills, 5) {
				fmt.Fprintf(&b, "* %s\n", skill)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Suggestions for Improvement\n\n")
	for _, s := range r.Analysis.Suggestions {
		fmt.Fprintf(&b, "* %s\n", s)
	}

	return b.String()
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
