package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/knowledge"
	"github.com/resumelens/backend/models"
	"github.com/resumelens/backend/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		LLMMinIntervalSeconds:  1,
		MaxResumeChars:         3000,
		MaxJobDescriptionChars: 1500,
	}
}

func newTestAgent(cache AnalysisCache) *ResumeAgent {
	a := analyzer.New(knowledge.NewGraph())
	return NewResumeAgent(testConfig(), nil, cache, a)
}

// memoryCache is a map-backed AnalysisCache for tests.
type memoryCache struct {
	entries map[string]*models.AnalyzeResponse
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*models.AnalyzeResponse)}
}

func (m *memoryCache) GetCachedAnalysis(ctx context.Context, key string) (*models.AnalyzeResponse, error) {
	if resp, ok := m.entries[key]; ok {
		clone := *resp
		return &clone, nil
	}
	return nil, storage.ErrCacheMiss
}

func (m *memoryCache) PutCachedAnalysis(ctx context.Context, key string, resp *models.AnalyzeResponse) error {
	clone := *resp
	m.entries[key] = &clone
	m.puts++
	return nil
}

func TestAnalyzeDeterministicOnly(t *testing.T) {
	agent := newTestAgent(nil)

	resp, err := agent.Analyze(context.Background(), &models.AnalyzeRequest{
		ResumeText:     "Skills: Python, Go\n\nBio",
		JobDescription: "Requirements: Python, Docker\n\nEnd",
	})
	require.NoError(t, err)

	assert.False(t, resp.LLMUsed)
	assert.False(t, resp.FromCache)
	assert.Empty(t, resp.Narrative)
	assert.Equal(t, []string{"Python", "Go"}, resp.Report.BasicInfo.Skills)
	require.NotNil(t, resp.Report.JobMatch)
	assert.Equal(t, []string{"python"}, resp.Report.JobMatch.DirectMatches)
}

func TestAnalyzeEmptyResume(t *testing.T) {
	agent := newTestAgent(nil)

	_, err := agent.Analyze(context.Background(), &models.AnalyzeRequest{})
	assert.Error(t, err)
}

func TestAnalyzeUsesCache(t *testing.T) {
	cache := newMemoryCache()
	agent := newTestAgent(cache)
	req := &models.AnalyzeRequest{ResumeText: "Skills: Python\n\nBio"}

	first, err := agent.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, cache.puts)

	second, err := agent.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, cache.puts, "cache hits must not be re-stored")
	assert.Equal(t, first.Report.Summary, second.Report.Summary)
}

func TestAnalyzeStructured(t *testing.T) {
	agent := newTestAgent(nil)

	report := agent.AnalyzeStructured("Skills: Python, Go\n\nBio", "")
	assert.Equal(t, []string{"Python", "Go"}, report.BasicInfo.Skills)
	assert.Nil(t, report.JobMatch)
	assert.Contains(t, report.Summary, "# Resume Analysis Summary")
}

func TestMatchSkills(t *testing.T) {
	agent := newTestAgent(nil)

	result := agent.MatchSkills("Skills: Python, Go\n\nBio", "We use Python and Docker daily.")
	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
	assert.Equal(t, 50.0, result.MatchPercentage)
}

func TestRegistryTools(t *testing.T) {
	agent := newTestAgent(nil)

	names := []string{}
	for _, tool := range agent.Registry().List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{
		"analyze_resume", "match_skills", "extract_skills",
		"extract_experience", "extract_education",
	}, names)
}

func TestLLMOperationsUnavailable(t *testing.T) {
	agent := newTestAgent(nil)
	ctx := context.Background()

	_, err := agent.InterviewQuestions(ctx, &models.InterviewQuestionsRequest{ResumeText: "x"})
	assert.True(t, errors.Is(err, ErrLLMUnavailable))

	_, err = agent.SalaryIntelligence(ctx, &models.SalaryIntelligenceRequest{ResumeText: "x"})
	assert.True(t, errors.Is(err, ErrLLMUnavailable))

	_, err = agent.OptimizeResume(ctx, &models.OptimizeResumeRequest{ResumeText: "x"})
	assert.True(t, errors.Is(err, ErrLLMUnavailable))

	_, err = agent.ExtractResumeFromPDF(ctx, []byte("%PDF-"), "resume.pdf")
	assert.True(t, errors.Is(err, ErrLLMUnavailable))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "abcdef", truncate("abcdef", 10))
	assert.Equal(t, "abcdef", truncate("abcdef", 0), "zero limit disables truncation")
}
