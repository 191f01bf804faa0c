package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelens/backend/models"
)

const backendResume = "Senior Backend Developer at a fintech startup with 7+ years of experience"

func TestAnalyzeResumeContext(t *testing.T) {
	s := NewService()

	ctx := s.AnalyzeResumeContext(backendResume)

	assert.Equal(t, []string{"backend_engineer"}, ctx.DetectedRoles)
	// "fintech" appears in both the tech and finance keyword lists
	assert.Equal(t, []string{"tech", "finance"}, ctx.IndustryIndicators)
	assert.Equal(t, "senior", ctx.ExperienceLevel)
	assert.Contains(t, ctx.RoleKeywords, "backend developer")
	assert.Equal(t, 1.0, ctx.ConfidenceScore)
}

func TestAnalyzeResumeContextNoSignals(t *testing.T) {
	s := NewService()

	ctx := s.AnalyzeResumeContext("I enjoy gardening and long walks.")

	assert.Empty(t, ctx.DetectedRoles)
	assert.NotNil(t, ctx.DetectedRoles)
	assert.Empty(t, ctx.IndustryIndicators)
	assert.Equal(t, "mid", ctx.ExperienceLevel)
	assert.Equal(t, 0.0, ctx.ConfidenceScore)
}

func TestAnalyzeResumeContextExperienceLevels(t *testing.T) {
	s := NewService()

	assert.Equal(t, "junior", s.AnalyzeResumeContext("Junior developer, recent graduate").ExperienceLevel)
	assert.Equal(t, "mid", s.AnalyzeResumeContext("5+ years of experience shipping software").ExperienceLevel)
	assert.Equal(t, "senior", s.AnalyzeResumeContext("Staff engineer and architect").ExperienceLevel)
}

func TestRecommendIntelligent(t *testing.T) {
	s := NewService()

	recs := s.RecommendIntelligent(models.IntelligentRecommendationRequest{
		ResumeText:      backendResume,
		CurrentSkillIDs: []string{"python", "sql", "problem_solving", "git"},
	})
	require.Len(t, recs, 4, "low-relevance paths are filtered and results cap at four")

	assert.Equal(t, "swe_backend", recs[0].CareerPath.ID)
	assert.InDelta(t, 73.75, recs[0].RelevanceScore, 1e-9)
	assert.Equal(t, "High", recs[0].ConfidenceLevel)
	assert.Equal(t,
		"Direct role match found in resume; Tech industry background; Appropriate for senior level",
		recs[0].WhyRecommended)
	assert.Equal(t, 62.5, recs[0].OverallMatchPct)

	// the rest ride on related-role credit for backend experience
	assert.Equal(t, "swe_fullstack", recs[1].CareerPath.ID)
	assert.Equal(t, "Medium", recs[1].ConfidenceLevel)
	assert.Contains(t, recs[1].WhyRecommended, "Related role experience (Backend Engineer)")
	assert.Equal(t, "data_analyst", recs[2].CareerPath.ID)
	assert.Equal(t, "devops_engineer", recs[3].CareerPath.ID)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].RelevanceScore, recs[i].RelevanceScore)
	}
	for _, rec := range recs {
		assert.Greater(t, rec.RelevanceScore, 25.0)
		assert.Equal(t, "senior", rec.ResumeAnalysis.ExperienceLevel)
	}
}

func TestRecommendIntelligentNoSignals(t *testing.T) {
	s := NewService()

	recs := s.RecommendIntelligent(models.IntelligentRecommendationRequest{
		ResumeText: "I enjoy gardening and long walks.",
	})
	assert.NotNil(t, recs)
	assert.Empty(t, recs, "without roles or skills nothing clears the relevance bar")
}
