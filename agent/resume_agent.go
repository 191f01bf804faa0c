// Package agent orchestrates resume analysis: deterministic structured
// analysis first, LLM enrichment on top when the model is available, with
// caching and rate limiting in between. The deterministic report is always
// produced, so an LLM outage degrades the response instead of failing it.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/gemini"
	"github.com/resumelens/backend/models"
	"github.com/resumelens/backend/storage"
	"github.com/resumelens/backend/tools"
)

// AnalysisCache stores analysis responses keyed by input hash. Implemented by
// storage.FirestoreClient; nil disables caching.
type AnalysisCache interface {
	GetCachedAnalysis(ctx context.Context, key string) (*models.AnalyzeResponse, error)
	PutCachedAnalysis(ctx context.Context, key string, resp *models.AnalyzeResponse) error
}

// ResumeAgent coordinates the analysis tools, the LLM and the cache
type ResumeAgent struct {
	cfg   *config.Config
	llm   *gemini.Client
	cache AnalysisCache

	analyzeTool *tools.AnalyzeResumeTool
	matchTool   *tools.MatchSkillsTool
	registry    *tools.Registry

	// limiter throttles all LLM calls across requests
	limiter *rate.Limiter
}

// NewResumeAgent creates the agent. llm may be nil, in which case every
// response is deterministic-only; cache may be nil to disable caching.
func NewResumeAgent(cfg *config.Config, llm *gemini.Client, cache AnalysisCache, a *analyzer.Analyzer) *ResumeAgent {
	analyzeTool := tools.NewAnalyzeResumeTool(a)
	matchTool := tools.NewMatchSkillsTool(a)

	registry := tools.NewRegistry()
	registry.Register(analyzeTool)
	registry.Register(matchTool)
	registry.Register(tools.NewExtractSkillsTool())
	registry.Register(tools.NewExtractExperienceTool())
	registry.Register(tools.NewExtractEducationTool())

	interval := time.Duration(cfg.LLMMinIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Second
	}

	return &ResumeAgent{
		cfg:         cfg,
		llm:         llm,
		cache:       cache,
		analyzeTool: analyzeTool,
		matchTool:   matchTool,
		registry:    registry,
		limiter:     rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Registry exposes the tool registry for the MCP server
func (a *ResumeAgent) Registry() *tools.Registry {
	return a.registry
}

// Close releases the LLM client
func (a *ResumeAgent) Close() error {
	if a.llm != nil {
		return a.llm.Close()
	}
	return nil
}

// Analyze runs the full analysis flow: cache lookup, deterministic structured
// report, then an LLM narrative when the model is available and the rate
// limit allows. The narrative never blocks the request; when the limiter or
// the model says no, the deterministic report ships alone.
func (a *ResumeAgent) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	if req.ResumeText == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	resumeText := truncate(req.ResumeText, a.cfg.MaxResumeChars)
	jobDescription := truncate(req.JobDescription, a.cfg.MaxJobDescriptionChars)

	key := storage.AnalysisCacheKey(resumeText, jobDescription)
	if a.cache != nil {
		cached, err := a.cache.GetCachedAnalysis(ctx, key)
		if err == nil {
			log.Printf("[Agent] Analysis cache hit: %s", key[:12])
			cached.FromCache = true
			return cached, nil
		}
		if !errors.Is(err, storage.ErrCacheMiss) {
			log.Printf("[Agent] Cache lookup failed: %v", err)
		}
	}

	report := a.analyzeTool.AnalyzeResume(resumeText, jobDescription)

	resp := &models.AnalyzeResponse{Report: *report}

	if a.llm != nil && a.limiter.Allow() {
		narrative, err := a.llm.NarrativeFeedback(ctx, report, jobDescription)
		if err != nil {
			log.Printf("[Agent] Narrative generation failed, returning structured report only: %v", err)
		} else {
			resp.Narrative = narrative
			resp.LLMUsed = true
		}
	}

	if a.cache != nil {
		if err := a.cache.PutCachedAnalysis(ctx, key, resp); err != nil {
			log.Printf("[Agent] Failed to cache analysis: %v", err)
		}
	}
	return resp, nil
}

// AnalyzeStructured runs the deterministic analysis only: no cache, no LLM,
// no rate limiting. Used by callers that want a reproducible report.
func (a *ResumeAgent) AnalyzeStructured(resumeText, jobDescription string) *models.Report {
	return a.analyzeTool.AnalyzeResume(
		truncate(resumeText, a.cfg.MaxResumeChars),
		truncate(jobDescription, a.cfg.MaxJobDescriptionChars),
	)
}

// MatchSkills runs the strict direct-only skill match. Purely deterministic,
// never cached, never rate limited.
func (a *ResumeAgent) MatchSkills(resumeText, jobDescription string) models.StrictMatchResult {
	return a.matchTool.MatchSkills(
		truncate(resumeText, a.cfg.MaxResumeChars),
		truncate(jobDescription, a.cfg.MaxJobDescriptionChars),
	)
}

// InterviewQuestions generates interview questions via the LLM
func (a *ResumeAgent) InterviewQuestions(ctx context.Context, req *models.InterviewQuestionsRequest) (*models.InterviewQuestionsResponse, error) {
	if err := a.waitLLM(ctx); err != nil {
		return nil, err
	}
	req.ResumeText = truncate(req.ResumeText, a.cfg.MaxResumeChars)
	req.JobDescription = truncate(req.JobDescription, a.cfg.MaxJobDescriptionChars)
	return a.llm.InterviewQuestions(ctx, req)
}

// InterviewFeedback reviews a mock interview answer via the LLM
func (a *ResumeAgent) InterviewFeedback(ctx context.Context, req *models.InterviewFeedbackRequest) (*models.InterviewFeedbackResponse, error) {
	if err := a.waitLLM(ctx); err != nil {
		return nil, err
	}
	req.JobDescription = truncate(req.JobDescription, a.cfg.MaxJobDescriptionChars)
	return a.llm.InterviewFeedback(ctx, req)
}

// SalaryIntelligence estimates a salary band via the LLM
func (a *ResumeAgent) SalaryIntelligence(ctx context.Context, req *models.SalaryIntelligenceRequest) (*models.SalaryIntelligenceResponse, error) {
	if err := a.waitLLM(ctx); err != nil {
		return nil, err
	}
	req.ResumeText = truncate(req.ResumeText, a.cfg.MaxResumeChars)
	return a.llm.SalaryIntelligence(ctx, req)
}

// OptimizeResume rewrites a resume for a target job via the LLM
func (a *ResumeAgent) OptimizeResume(ctx context.Context, req *models.OptimizeResumeRequest) (*models.OptimizedResume, error) {
	if err := a.waitLLM(ctx); err != nil {
		return nil, err
	}
	req.ResumeText = truncate(req.ResumeText, a.cfg.MaxResumeChars)
	req.JobDescription = truncate(req.JobDescription, a.cfg.MaxJobDescriptionChars)
	return a.llm.OptimizeResume(ctx, req)
}

// ExtractResumeFromPDF reads resume text out of PDF bytes via the LLM. Used
// when local PDF parsing yields nothing, e.g. for scanned documents.
func (a *ResumeAgent) ExtractResumeFromPDF(ctx context.Context, pdfData []byte, filename string) (string, error) {
	if err := a.waitLLM(ctx); err != nil {
		return "", err
	}
	return a.llm.ExtractResumeFromPDF(ctx, pdfData, filename)
}

// ErrLLMUnavailable is returned by LLM-only operations when no model client
// is configured
var ErrLLMUnavailable = errors.New("LLM is not configured")

// waitLLM blocks until the rate limiter admits another LLM call
func (a *ResumeAgent) waitLLM(ctx context.Context) error {
	if a.llm == nil {
		return ErrLLMUnavailable
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
