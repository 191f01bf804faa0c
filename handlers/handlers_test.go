package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelens/backend/agent"
	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/career"
	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/knowledge"
	"github.com/resumelens/backend/models"
)

// newTestRouter wires the deterministic endpoints with no LLM, no Firestore
// and no Cloud Storage behind them.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		LLMMinIntervalSeconds:  1,
		MaxResumeChars:         3000,
		MaxJobDescriptionChars: 1500,
	}
	resumeAgent := agent.NewResumeAgent(cfg, nil, nil, analyzer.New(knowledge.NewGraph()))

	analyzeHandler := NewAnalyzeHandler(resumeAgent, nil, nil)
	interviewHandler := NewInterviewHandler(resumeAgent)
	careerHandler := NewCareerHandler(career.NewService())
	toolsHandler := NewToolsHandler(resumeAgent.Registry())

	router := gin.New()
	router.GET("/health", Health)
	api := router.Group("/api")
	api.POST("/analyze", analyzeHandler.Analyze)
	api.POST("/analyze/structured", analyzeHandler.AnalyzeStructured)
	api.GET("/tools", toolsHandler.List)
	api.POST("/match-skills", analyzeHandler.MatchSkills)
	api.POST("/optimize-resume", analyzeHandler.OptimizeResume)
	api.POST("/interview/questions", interviewHandler.Questions)
	api.GET("/career/skills", careerHandler.Skills)
	api.GET("/career/skills/:skill_id/learning-resources", careerHandler.LearningResources)
	api.GET("/career/paths/:path_id", careerHandler.PathByID)
	api.POST("/career/recommend", careerHandler.Recommend)
	api.POST("/career/intelligent-recommendation", careerHandler.IntelligentRecommend)
	api.POST("/career/skills-gap", careerHandler.SkillsGap)
	api.POST("/career/extract-skill-ids", careerHandler.ExtractSkillIDs)
	api.POST("/career/industry-transition", careerHandler.TransitionAnalysis)
	api.POST("/career/generate-trajectory", careerHandler.GenerateTrajectory)
	api.POST("/career/skill-evolution", careerHandler.SkillEvolution)
	api.GET("/career/growth-patterns", careerHandler.GrowthPatterns)
	api.GET("/career/growth-patterns/:pattern_id", careerHandler.GrowthPatternByID)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Skills: Python, Go\n\nBio","job_description":"Requirements: Python, Docker\n\nEnd"}`
	w := doJSON(t, router, http.MethodPost, "/api/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.LLMUsed)
	assert.Equal(t, []string{"Python", "Go"}, resp.Report.BasicInfo.Skills)
	require.NotNil(t, resp.Report.JobMatch)
	assert.Equal(t, []string{"python"}, resp.Report.JobMatch.DirectMatches)
	assert.Contains(t, resp.Report.Summary, "# Resume Analysis Summary")
}

func TestAnalyzeEndpointMissingResume(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/analyze", `{"job_description":"anything"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Please provide resume text or upload a resume file", resp.Error)
}

func TestAnalyzeStructuredEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Skills: Python, Go\n\nBio"}`
	w := doJSON(t, router, http.MethodPost, "/api/analyze/structured", body)
	require.Equal(t, http.StatusOK, w.Code)

	var report models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, []string{"Python", "Go"}, report.BasicInfo.Skills)
	assert.Nil(t, report.JobMatch)

	// deterministic: a repeat request yields the identical report
	w2 := doJSON(t, router, http.MethodPost, "/api/analyze/structured", body)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func doMultipart(t *testing.T, router *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpointMultipartUpload(t *testing.T) {
	router := newTestRouter()

	w := doMultipart(t, router, "/api/analyze", "resume.txt",
		[]byte("Skills: Python, Go\n\nBio"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Python", "Go"}, resp.Report.BasicInfo.Skills)
}

func TestAnalyzeEndpointUnreadablePDF(t *testing.T) {
	router := newTestRouter()

	// not a real PDF; local parsing fails and no model is configured to
	// fall back to
	w := doMultipart(t, router, "/api/analyze", "resume.pdf",
		[]byte("not a pdf at all"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Could not extract text from the uploaded file", resp.Error)
}

func TestToolsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/tools", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tools []map[string]interface{} `json:"tools"`
		Count int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	require.Len(t, resp.Tools, 5)
	assert.Equal(t, "analyze_resume", resp.Tools[0]["name"])
}

func TestMatchSkillsEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Skills: Python, Go\n\nBio","job_description":"We use Python and Docker daily."}`
	w := doJSON(t, router, http.MethodPost, "/api/match-skills", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.StrictMatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
	assert.Equal(t, 50.0, result.MatchPercentage)
}

func TestMatchSkillsEndpointValidation(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/match-skills", `{"resume_text":"only one side"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptimizeResumeWithoutLLM(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Skills: Python","job_description":"Go shop"}`
	w := doJSON(t, router, http.MethodPost, "/api/optimize-resume", body)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI features are not available on this deployment", resp.Error)
}

func TestInterviewQuestionsWithoutLLM(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Skills: Python","job_description":"Backend role"}`
	w := doJSON(t, router, http.MethodPost, "/api/interview/questions", body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCareerSkillsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/career/skills", "")
	require.Equal(t, http.StatusOK, w.Code)

	var skills []models.CareerSkill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.NotEmpty(t, skills)
}

func TestCareerLearningResourcesNotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/career/skills/cobol/learning-resources", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareerPathByIDEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/career/paths/swe_backend", "")
	require.Equal(t, http.StatusOK, w.Code)

	var path models.CareerPath
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &path))
	assert.Equal(t, "swe_backend", path.ID)

	w = doJSON(t, router, http.MethodGet, "/api/career/paths/astronaut", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareerRecommendEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/career/recommend", `["python","git"]`)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []models.PathRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Len(t, recs, 7)
}

func TestCareerSkillsGapEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"current_skill_ids":["python"],"target_career_path_id":"swe_backend","target_stage_name":"Junior Backend Developer"}`
	w := doJSON(t, router, http.MethodPost, "/api/career/skills-gap", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SkillsGapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AllSkillsMet)

	body = `{"current_skill_ids":["python"],"target_career_path_id":"astronaut","target_stage_name":"Junior"}`
	w = doJSON(t, router, http.MethodPost, "/api/career/skills-gap", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareerExtractSkillIDsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/career/extract-skill-ids", `{"resume_text":"Python and SQL"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExtractSkillIDsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"python", "sql"}, resp.SkillIDs)
}

func TestCareerIntelligentRecommendationEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"resume_text":"Senior Backend Developer at a fintech startup","current_skill_ids":["python","sql","git"]}`
	w := doJSON(t, router, http.MethodPost, "/api/career/intelligent-recommendation", body)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []models.IntelligentRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "swe_backend", recs[0].CareerPath.ID)
	assert.LessOrEqual(t, len(recs), 4)

	w = doJSON(t, router, http.MethodPost, "/api/career/intelligent-recommendation", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCareerGenerateTrajectoryEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"current_skill_ids":["python","sql","problem_solving","git"],"target_career_path_id":"swe_backend","start_date":"2025-01-01T00:00:00Z"}`
	w := doJSON(t, router, http.MethodPost, "/api/career/generate-trajectory", body)
	require.Equal(t, http.StatusOK, w.Code)

	var trajectory models.CareerTrajectory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trajectory))
	assert.Equal(t, "trajectory_swe_backend_20250101", trajectory.ID)
	assert.Len(t, trajectory.StageEvolutions, 3)

	body = `{"target_career_path_id":"astronaut"}`
	w = doJSON(t, router, http.MethodPost, "/api/career/generate-trajectory", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareerSkillEvolutionEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"skill_ids":["python"],"timeline_months":6,"start_date":"2025-01-01T00:00:00Z"}`
	w := doJSON(t, router, http.MethodPost, "/api/career/skill-evolution", body)
	require.Equal(t, http.StatusOK, w.Code)

	var evolutions []models.SkillEvolution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evolutions))
	require.Len(t, evolutions, 1)
	assert.Len(t, evolutions[0].ProjectedLevels, 6)
}

func TestCareerGrowthPatternsEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/career/growth-patterns", "")
	require.Equal(t, http.StatusOK, w.Code)

	var patterns []models.CareerGrowthPattern
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patterns))
	assert.Len(t, patterns, 3)

	w = doJSON(t, router, http.MethodGet, "/api/career/growth-patterns/tech_management", "")
	require.Equal(t, http.StatusOK, w.Code)

	var pattern models.CareerGrowthPattern
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pattern))
	assert.Equal(t, "Engineering Management Path", pattern.PatternName)

	w = doJSON(t, router, http.MethodGet, "/api/career/growth-patterns/astronaut", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareerTransitionEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"current_industry":"finance","target_industry":"tech"}`
	w := doJSON(t, router, http.MethodPost, "/api/career/industry-transition", body)
	require.Equal(t, http.StatusOK, w.Code)

	var transitions []models.IndustryTransition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transitions))
	require.Len(t, transitions, 1)
	assert.Equal(t, "Medium", transitions[0].TransitionDifficulty)
}
