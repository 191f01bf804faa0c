package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// NarrativeFeedback turns a structured report into conversational feedback for
// the candidate. The structured report stays authoritative; the narrative is
// presentation only.
func (c *Client) NarrativeFeedback(ctx context.Context, report *models.Report, jobDescription string) (string, error) {
	reportJSON, _ := json.Marshal(report)

	jobContext := ""
	if jobDescription != "" {
		jobContext = fmt.Sprintf("\nJOB DESCRIPTION:\n%s\n", jobDescription)
	}

	prompt := fmt.Sprintf(`You are a professional career coach reviewing a resume analysis.

STRUCTURED ANALYSIS:
%s
%s
Write warm, specific feedback for the candidate in 3-4 short paragraphs:
- Open with what stands out positively
- Address the weaknesses constructively, referencing the analysis
- Close with the two most impactful next steps

Do not invent facts that are not in the analysis. Do not repeat the raw
percentages more than once. Return plain text, no markdown headings.`, reportJSON, jobContext)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

// InterviewQuestions generates tailored interview questions for a candidate
// and role
func (c *Client) InterviewQuestions(ctx context.Context, req *models.InterviewQuestionsRequest) (*models.InterviewQuestionsResponse, error) {
	numQuestions := req.NumQuestions
	if numQuestions <= 0 || numQuestions > 15 {
		numQuestions = 5
	}
	types := req.QuestionTypes
	if len(types) == 0 {
		types = []string{"technical", "behavioral"}
	}

	prompt := fmt.Sprintf(`Generate %d interview questions for this candidate and role.
Question types to cover: %s

RESUME:
%s

JOB DESCRIPTION:
%s

Return a JSON object with:
{
  "questions": [
    {
      "question": "The interview question",
      "type": "technical|behavioral|situational",
      "rationale": "Why this question fits this candidate and role"
    }
  ]
}

Base questions on the candidate's actual experience and the job's actual requirements.
Return ONLY the JSON object, no markdown formatting, no explanation.`,
		numQuestions, strings.Join(types, ", "), req.ResumeText, req.JobDescription)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result models.InterviewQuestionsResponse
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse interview questions response: %s", text)
		return nil, fmt.Errorf("failed to parse questions JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("empty questions response")
	}
	return &result, nil
}

// InterviewFeedback reviews a candidate's answer to a mock interview question
func (c *Client) InterviewFeedback(ctx context.Context, req *models.InterviewFeedbackRequest) (*models.InterviewFeedbackResponse, error) {
	jobContext := ""
	if req.JobDescription != "" {
		jobContext = fmt.Sprintf("\nJOB DESCRIPTION:\n%s\n", req.JobDescription)
	}

	prompt := fmt.Sprintf(`You are an experienced interviewer evaluating a candidate's answer.

QUESTION:
%s

CANDIDATE'S ANSWER:
%s
%s
Return a JSON object with:
{
  "score": 0-10,
  "strengths": ["what the answer did well"],
  "improvements": ["specific ways to improve the answer"],
  "suggested_answer": "A stronger version of the answer in 2-3 sentences"
}

Be specific and constructive. Score 7+ only for genuinely strong answers.
Return ONLY the JSON object.`, req.Question, req.Answer, jobContext)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result models.InterviewFeedbackResponse
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse interview feedback response: %s", text)
		return nil, fmt.Errorf("failed to parse feedback JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("empty feedback response")
	}
	return &result, nil
}

// SalaryIntelligence estimates a compensation band for the candidate in a
// given role and location
func (c *Client) SalaryIntelligence(ctx context.Context, req *models.SalaryIntelligenceRequest) (*models.SalaryIntelligenceResponse, error) {
	location := req.Location
	if location == "" {
		location = "Remote"
	}

	prompt := fmt.Sprintf(`Estimate a realistic salary range for this candidate.

TARGET ROLE: %s
LOCATION: %s

RESUME:
%s

Return a JSON object with:
{
  "salary_range": {"min": 0, "max": 0, "currency": "USD", "period": "yearly"},
  "market_positioning": "1-2 sentences on where this candidate sits in the market",
  "negotiation_tips": ["specific, actionable negotiation tips"]
}

Base the range on the candidate's actual experience level and skills.
Return ONLY the JSON object.`, req.JobTitle, location, req.ResumeText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result models.SalaryIntelligenceResponse
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse salary response: %s", text)
		return nil, fmt.Errorf("failed to parse salary JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("empty salary response")
	}
	return &result, nil
}

// OptimizeResume rewrites a resume to better target a specific job
func (c *Client) OptimizeResume(ctx context.Context, req *models.OptimizeResumeRequest) (*models.OptimizedResume, error) {
	focus := "overall presentation"
	if len(req.FocusAreas) > 0 {
		focus = strings.Join(req.FocusAreas, ", ")
	}

	prompt := fmt.Sprintf(`Rewrite this resume to better target the job description below.
Focus areas: %s

RESUME:
%s

JOB DESCRIPTION:
%s

Return a JSON object with:
{
  "optimized_resume": "The full rewritten resume text",
  "improvements": ["what was changed and why"],
  "ats_score": 0-100,
  "keywords_added": ["keywords added for ATS matching"],
  "recommendations": ["further improvements the candidate should make"],
  "match_percentage": 0-100
}

Never fabricate experience, employers or qualifications the candidate does not have.
Return ONLY the JSON object.`, focus, req.ResumeText, req.JobDescription)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result models.OptimizedResume
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse optimize response: %s", text)
		return nil, fmt.Errorf("failed to parse optimized resume JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("empty optimized resume response")
	}
	return &result, nil
}

// ExtractResumeFromPDF extracts plain resume text from PDF bytes using
// Gemini's multimodal capability. Used as a fallback when local PDF text
// extraction yields nothing (e.g. scanned documents).
func (c *Client) ExtractResumeFromPDF(ctx context.Context, pdfData []byte, filename string) (string, error) {
	prompt := `Extract the full text content of this resume document.
Preserve section headings (Skills, Experience, Education) on their own lines.
Return ONLY the extracted text, no commentary.`

	pdfBlob := genai.Blob{
		MIMEType: "application/pdf",
		Data:     pdfData,
	}

	resp, err := c.model.GenerateContent(ctx, pdfBlob, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	log.Printf("[Gemini] Extracted resume text from '%s': %d chars", filename, len(text))
	return text, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
