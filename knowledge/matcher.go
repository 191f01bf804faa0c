package knowledge

import (
	"math"
	"strings"

	"github.com/resumelens/backend/models"
)

// relatedMatchWeight is the partial credit a related match earns relative to
// a direct match.
const relatedMatchWeight = 0.75

// Match compares resume skills against job skills. Every job skill lands in
// exactly one bucket: direct match (case-insensitive equality), related match
// (some skill related to it appears in the resume) or missing. The score
// weighs direct matches at 100% and related matches at 75%, as a percentage
// of the total job skills, rounded to one decimal. An empty job skill list
// scores 0.0.
func (g *Graph) Match(resumeSkills, jobSkills []string) models.MatchResult {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	result := models.MatchResult{
		DirectMatches:  []string{},
		RelatedMatches: []models.RelatedMatch{},
		MissingSkills:  []string{},
	}

	for _, raw := range jobSkills {
		jobSkill := strings.ToLower(raw)
		if resumeSet[jobSkill] {
			result.DirectMatches = append(result.DirectMatches, jobSkill)
			continue
		}

		var via []string
		for _, rel := range g.Lookup(jobSkill).RelatedSkills {
			if resumeSet[strings.ToLower(rel)] {
				via = append(via, strings.ToLower(rel))
			}
		}
		if len(via) > 0 {
			result.RelatedMatches = append(result.RelatedMatches, models.RelatedMatch{
				JobSkill:   jobSkill,
				MatchedVia: via,
			})
		} else {
			result.MissingSkills = append(result.MissingSkills, jobSkill)
		}
	}

	if total := len(jobSkills); total > 0 {
		score := (float64(len(result.DirectMatches)) + float64(len(result.RelatedMatches))*relatedMatchWeight) / float64(total) * 100
		result.MatchPercentage = math.Round(score*10) / 10
	}
	return result
}

// MatchStrict compares skill lists with direct matches only: no related
// credit, no graph. The score is matched/total job skills as a percentage,
// rounded to one decimal. Matched skills keep the job list's original casing.
func MatchStrict(resumeSkills, jobSkills []string) models.StrictMatchResult {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	matched := []string{}
	for _, js := range jobSkills {
		if resumeSet[strings.ToLower(js)] {
			matched = append(matched, js)
		}
	}

	result := models.StrictMatchResult{
		MatchedSkills:        matched,
		ResumeSkills:         resumeSkills,
		JobDescriptionSkills: jobSkills,
	}
	if total := len(jobSkills); total > 0 {
		result.MatchPercentage = math.Round(float64(len(matched))/float64(total)*1000) / 10
	}
	return result
}
