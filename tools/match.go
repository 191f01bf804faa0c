package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/models"
)

// MatchSkillsTool runs the strict, direct-only skill match between a resume
// and a job description. No knowledge-graph credit is applied; related skills
// count for nothing here.
type MatchSkillsTool struct {
	analyzer *analyzer.Analyzer
}

// NewMatchSkillsTool creates the strict matching tool
func NewMatchSkillsTool(a *analyzer.Analyzer) *MatchSkillsTool {
	return &MatchSkillsTool{analyzer: a}
}

func (t *MatchSkillsTool) Name() string {
	return "match_skills"
}

func (t *MatchSkillsTool) Description() string {
	return `Match resume skills against job description skills with exact matching only.
Extracts skills from both texts, then counts case-insensitive direct matches.
Returns matched skills, both skill lists and the match percentage.`
}

func (t *MatchSkillsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "The resume text",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "The job description text",
			},
		},
		"required": []string{"resume_text", "job_description"},
	}
}

// MatchSkillsInput is the input for strict matching
type MatchSkillsInput struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (t *MatchSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in MatchSkillsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	return NewSuccessResult(t.analyzer.MatchStrict(in.ResumeText, in.JobDescription))
}

// MatchSkills is a direct method for callers that don't go through JSON
func (t *MatchSkillsTool) MatchSkills(resumeText, jobDescription string) models.StrictMatchResult {
	return t.analyzer.MatchStrict(resumeText, jobDescription)
}
