package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumelens/backend/models"
	"github.com/resumelens/backend/parser"
)

// TextInput is the shared input shape for the extraction tools
type TextInput struct {
	Text string `json:"text"`
}

func textInputSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"text"},
	}
}

// ExtractSkillsTool extracts a skill list from resume or job text
type ExtractSkillsTool struct{}

// NewExtractSkillsTool creates the skill extraction tool
func NewExtractSkillsTool() *ExtractSkillsTool {
	return &ExtractSkillsTool{}
}

func (t *ExtractSkillsTool) Name() string {
	return "extract_skills"
}

func (t *ExtractSkillsTool) Description() string {
	return `Extract a list of skills from resume or job description text.
Uses the labeled skills section when present, otherwise scans for known skill names.
Returns a JSON array of skill strings.`
}

func (t *ExtractSkillsTool) InputSchema() map[string]interface{} {
	return textInputSchema("The resume or job description text to extract skills from")
}

func (t *ExtractSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in TextInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	return NewSuccessResult(parser.ExtractSkills(in.Text))
}

// ExtractSkills is a direct method for callers that don't go through JSON
func (t *ExtractSkillsTool) ExtractSkills(text string) []string {
	return parser.ExtractSkills(text)
}

// ExtractExperienceTool extracts work history entries from resume text
type ExtractExperienceTool struct{}

// NewExtractExperienceTool creates the experience extraction tool
func NewExtractExperienceTool() *ExtractExperienceTool {
	return &ExtractExperienceTool{}
}

func (t *ExtractExperienceTool) Name() string {
	return "extract_experience"
}

func (t *ExtractExperienceTool) Description() string {
	return `Extract work experience entries (company, title, dates, description) from resume text.
Returns a JSON array of experience entries; empty when no experience section exists.`
}

func (t *ExtractExperienceTool) InputSchema() map[string]interface{} {
	return textInputSchema("The resume text to extract work experience from")
}

func (t *ExtractExperienceTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in TextInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	return NewSuccessResult(parser.ExtractExperience(in.Text))
}

// ExtractExperience is a direct method for callers that don't go through JSON
func (t *ExtractExperienceTool) ExtractExperience(text string) []models.ExperienceEntry {
	return parser.ExtractExperience(text)
}

// ExtractEducationTool extracts education entries from resume text
type ExtractEducationTool struct{}

// NewExtractEducationTool creates the education extraction tool
func NewExtractEducationTool() *ExtractEducationTool {
	return &ExtractEducationTool{}
}

func (t *ExtractEducationTool) Name() string {
	return "extract_education"
}

func (t *ExtractEducationTool) Description() string {
	return `Extract education entries (degree, institution, dates) from resume text.
Returns a JSON array of education entries; empty when no education section exists.`
}

func (t *ExtractEducationTool) InputSchema() map[string]interface{} {
	return textInputSchema("The resume text to extract education from")
}

func (t *ExtractEducationTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in TextInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	return NewSuccessResult(parser.ExtractEducation(in.Text))
}

// ExtractEducation is a direct method for callers that don't go through JSON
func (t *ExtractEducationTool) ExtractEducation(text string) []models.EducationEntry {
	return parser.ExtractEducation(text)
}
