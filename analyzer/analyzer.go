// Package analyzer turns raw resume text into a structured report: extracted
// skills, experience and education, heuristic strengths/weaknesses, optional
// job matching and a markdown summary. It is fully deterministic and makes no
// network calls, which keeps it usable as a fallback when the LLM is down.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/resumelens/backend/knowledge"
	"github.com/resumelens/backend/models"
	"github.com/resumelens/backend/parser"
)

// Weakness phrases reused by the suggestion rules.
const (
	weaknessFewSkills     = "Limited range of technical skills listed"
	weaknessNoExperience  = "No work experience listed"
	weaknessShortHistory  = "Limited work history"
	weaknessUnknownDegree = "Education details unclear or not specified"
	strengthDiverseSkills = "Diverse skill set with multiple technical competencies"
)

// Analyzer produces structured resume reports. The knowledge graph is
// injected so tests can swap in a smaller table.
type Analyzer struct {
	graph *knowledge.Graph
}

// New returns an Analyzer backed by the given skill graph
func New(graph *knowledge.Graph) *Analyzer {
	return &Analyzer{graph: graph}
}

// Analyze builds a full report for the resume, matching against the job
// description when one is supplied. Experience is counted as one year per
// entry.
func (a *Analyzer) Analyze(resumeText, jobDescription string) *models.Report {
	skills := parser.ExtractSkills(resumeText)
	experience := parser.ExtractExperience(resumeText)
	education := parser.ExtractEducation(resumeText)

	years := len(experience)
	level := educationLevel(education)

	strengths := []string{}
	weaknesses := []string{}

	if len(skills) >= 10 {
		strengths = append(strengths, strengthDiverseSkills)
	} else {
		weaknesses = append(weaknesses, weaknessFewSkills)
	}

	switch {
	case years >= 3:
		strengths = append(strengths, fmt.Sprintf("%d+ years of relevant work experience", years))
	case years == 0:
		weaknesses = append(weaknesses, weaknessNoExperience)
	default:
		weaknesses = append(weaknesses, weaknessShortHistory)
	}

	switch level {
	case "Master's", "PhD":
		strengths = append(strengths, fmt.Sprintf("Advanced degree (%s)", level))
	case "Unknown":
		weaknesses = append(weaknesses, weaknessUnknownDegree)
	}

	var jobMatch *models.MatchResult
	if jobDescription != "" {
		m := a.graph.Match(skills, ExtractJobSkills(jobDescription))
		jobMatch = &m

		if m.MatchPercentage >= 80 {
			strengths = append(strengths, fmt.Sprintf("Strong match (%.1f%%) with job requirements", m.MatchPercentage))
		} else if m.MatchPercentage <= 50 {
			weaknesses = append(weaknesses, fmt.Sprintf("Low match (%.1f%%) with job requirements", m.MatchPercentage))
			if len(m.MissingSkills) > 0 {
				top := m.MissingSkills
				if len(top) > 3 {
					top = top[:3]
				}
				weaknesses = append(weaknesses, "Missing key skills: "+strings.Join(top, ", "))
			}
		}
	}

	report := &models.Report{
		BasicInfo: models.BasicInfo{
			Skills:          skills,
			ExperienceYears: years,
			EducationLevel:  level,
		},
		Analysis: models.Assessment{
			Strengths:   strengths,
			Weaknesses:  weaknesses,
			Suggestions: suggest(resumeText, weaknesses, jobMatch),
		},
		JobMatch: jobMatch,
	}
	report.Summary = buildSummary(report)
	return report
}

// MatchStrict runs the direct-only matching mode on two raw texts, extracting
// skills from each side with the same parser
func (a *Analyzer) MatchStrict(resumeText, jobDescriptionText string) models.StrictMatchResult {
	return knowledge.MatchStrict(parser.ExtractSkills(resumeText), parser.ExtractSkills(jobDescriptionText))
}

// educationLevel maps education entries to the highest recognized degree.
// The first entry that names any degree wins, with per-entry priority
// PhD > Master's > Bachelor's.
func educationLevel(entries []models.EducationEntry) string {
	for _, e := range entries {
		degree := strings.ToLower(e.Degree)
		switch {
		case strings.Contains(degree, "phd") || strings.Contains(degree, "doctor"):
			return "PhD"
		case strings.Contains(degree, "master") || strings.Contains(degree, "ms") || strings.Contains(degree, "ma"):
			return "Master's"
		case strings.Contains(degree, "bachelor") || strings.Contains(degree, "bs") || strings.Contains(degree, "ba"):
			return "Bachelor's"
		}
	}
	return "Unknown"
}

func suggest(resumeText string, weaknesses []string, jobMatch *models.MatchResult) []string {
	suggestions := []string{}

	if hasWeakness(weaknesses, weaknessFewSkills) {
		suggestions = append(suggestions, "Expand your skills section to include more relevant technologies")
	}
	if hasWeakness(weaknesses, weaknessShortHistory) {
		suggestions = append(suggestions, "Add more details about your work experience, including measurable achievements")
	}
	if jobMatch != nil && jobMatch.MatchPercentage < 70 {
		suggestions = append(suggestions, "Tailor your resume to highlight skills relevant to this specific job")
	}
	if !strings.Contains(strings.ToLower(resumeText), "summary") {
		suggestions = append(suggestions, "Add a professional summary at the beginning of your resume")
	}
	return suggestions
}

func hasWeakness(weaknesses []string, phrase string) bool {
	for _, w := range weaknesses {
		if strings.Contains(w, phrase) {
			return true
		}
	}
	return false
}
