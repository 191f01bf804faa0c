package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumelens/backend/models"
)

func TestBuildSummaryTruncation(t *testing.T) {
	report := &models.Report{
		BasicInfo: models.BasicInfo{
			Skills: []string{
				"alpha", "bravo", "charlie", "delta", "echo",
				"foxtrot", "golf", "hotel", "india", "juliett",
			},
			ExperienceYears: 4,
			EducationLevel:  "Master's",
		},
		Analysis: models.Assessment{
			Strengths:   []string{"strong point"},
			Weaknesses:  []string{"weak point"},
			Suggestions: []string{"do better"},
		},
		JobMatch: &models.MatchResult{
			MatchPercentage: 42.5,
			DirectMatches:   []string{"dm1", "dm2", "dm3", "dm4", "dm5", "dm6"},
			RelatedMatches: []models.RelatedMatch{
				{JobSkill: "rm1", MatchedVia: []string{"via1", "via2", "via3"}},
				{JobSkill: "rm2", MatchedVia: []string{"via1"}},
				{JobSkill: "rm3", MatchedVia: []string{"via1"}},
				{JobSkill: "rm4", MatchedVia: []string{"via1"}},
			},
			MissingSkills: []string{"miss1", "miss2", "miss3", "miss4", "miss5", "miss6", "miss7"},
		},
	}

	summary := buildSummary(report)

	assert.Contains(t, summary, "# Resume Analysis Summary")
	assert.Contains(t, summary, "## Candidate Profile")
	assert.Contains(t, summary, "* **Experience**: 4 years")
	assert.Contains(t, summary, "* **Education**: Master's")
	assert.Contains(t, summary, "## Job Match: 42.5%")

	// skills list is cut to eight
	assert.Contains(t, summary, "hotel")
	assert.NotContains(t, summary, "india")
	assert.NotContains(t, summary, "juliett")

	// direct matches cut to five
	assert.Contains(t, summary, "* dm5\n")
	assert.NotContains(t, summary, "dm6")

	// related matches cut to three, via skills to two
	assert.Contains(t, summary, "* rm1 (via via1, via2)\n")
	assert.Contains(t, summary, "rm3")
	assert.NotContains(t, summary, "rm4")
	assert.NotContains(t, summary, "via3")

	// missing skills cut to five
	assert.Contains(t, summary, "miss5")
	assert.NotContains(t, summary, "miss6")
	assert.NotContains(t, summary, "miss7")

	assert.Contains(t, summary, "## Strengths\n\n* strong point\n")
	assert.Contains(t, summary, "## Areas for Improvement\n\n* weak point\n")
	assert.Contains(t, summary, "## Suggestions for Improvement\n\n* do better\n")
}

func TestBuildSummaryWithoutJobMatch(t *testing.T) {
	report := &models.Report{
		BasicInfo: models.BasicInfo{
			Skills:          []string{"Python"},
			ExperienceYears: 1,
			EducationLevel:  "Unknown",
		},
	}

	summary := buildSummary(report)

	assert.NotContains(t, summary, "## Job Match")
	assert.NotContains(t, summary, "### Direct Skill Matches")

	// headings always present, match or not
	for _, heading := range []string{
		"# Resume Analysis Summary",
		"## Candidate Profile",
		"## Strengths",
		"## Areas for Improvement",
		"## Suggestions for Improvement",
	} {
		assert.True(t, strings.Contains(summary, heading), "summary must contain %q", heading)
	}
}
