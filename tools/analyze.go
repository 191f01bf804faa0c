package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/models"
)

// AnalyzeResumeTool runs the full structured resume analysis, including
// knowledge-graph matching when a job description is supplied
type AnalyzeResumeTool struct {
	analyzer *analyzer.Analyzer
}

// NewAnalyzeResumeTool creates the analysis tool
func NewAnalyzeResumeTool(a *analyzer.Analyzer) *AnalyzeResumeTool {
	return &AnalyzeResumeTool{analyzer: a}
}

func (t *AnalyzeResumeTool) Name() string {
	return "analyze_resume"
}

func (t *AnalyzeResumeTool) Description() string {
	return `Analyze a resume and produce a structured report: skills, experience years,
education level, strengths, weaknesses, suggestions and a markdown summary.
When a job description is provided, skills are matched with related-skill credit.`
}

func (t *AnalyzeResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "The resume text to analyze",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "Optional job description to match against",
			},
		},
		"required": []string{"resume_text"},
	}
}

// AnalyzeResumeInput is the input for resume analysis
type AnalyzeResumeInput struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description,omitempty"`
}

func (t *AnalyzeResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeResumeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if in.ResumeText == "" {
		return NewErrorResult("resume_text is required")
	}
	return NewSuccessResult(t.analyzer.Analyze(in.ResumeText, in.JobDescription))
}

// AnalyzeResume is a direct method for callers that don't go through JSON
func (t *AnalyzeResumeTool) AnalyzeResume(resumeText, jobDescription string) *models.Report {
	return t.analyzer.Analyze(resumeText, jobDescription)
}
