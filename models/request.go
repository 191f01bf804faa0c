package models

// AnalyzeRequest represents the API request for resume analysis
// @Description Resume analysis request with resume text and optional job description
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" form:"resume_text" example:"John Doe\nSkills: Go, Python, SQL..."`
	JobDescription string `json:"job_description,omitempty" form:"job_description" example:"We need a backend engineer with Go and AWS experience"`
}

// AnalyzeResponse represents the API response for resume analysis
// @Description Structured analysis plus optional AI narrative
type AnalyzeResponse struct {
	Report    Report `json:"report"`
	Narrative string `json:"narrative,omitempty"` // LLM-authored feedback, empty when the LLM was unavailable
	FromCache bool   `json:"from_cache,omitempty"`
	LLMUsed   bool   `json:"llm_used"`
}

// MatchSkillsRequest represents the API request for direct skill matching
// @Description Strict skill matching request
type MatchSkillsRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

// InterviewQuestionsRequest represents a request for generated interview questions
type InterviewQuestionsRequest struct {
	ResumeText     string   `json:"resume_text" binding:"required"`
	JobDescription string   `json:"job_description" binding:"required"`
	QuestionTypes  []string `json:"question_types,omitempty" example:"technical,behavioral"`
	NumQuestions   int      `json:"num_questions,omitempty" example:"5"`
}

// InterviewFeedbackRequest represents a request for mock interview feedback
type InterviewFeedbackRequest struct {
	Question       string `json:"question" binding:"required"`
	Answer         string `json:"answer" binding:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// SalaryIntelligenceRequest represents a request for salary analysis
type SalaryIntelligenceRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
	JobTitle   string `json:"job_title" binding:"required"`
	Location   string `json:"location,omitempty" example:"Remote"`
}

// OptimizeResumeRequest represents a request to rewrite a resume for a job
type OptimizeResumeRequest struct {
	ResumeText     string   `json:"resume_text" binding:"required"`
	JobDescription string   `json:"job_description" binding:"required"`
	FocusAreas     []string `json:"focus_areas,omitempty" example:"skills,experience"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"resume_text is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
