package models

// InterviewQuestion is one generated interview question
type InterviewQuestion struct {
	Question  string `json:"question"`
	Type      string `json:"type"`      // technical, behavioral, situational
	Rationale string `json:"rationale"` // why this question fits the candidate and role
}

// InterviewQuestionsResponse is the strict schema expected from the LLM when
// generating interview questions
type InterviewQuestionsResponse struct {
	Questions []InterviewQuestion `json:"questions"`
}

// Valid reports whether the response carries usable content
func (r *InterviewQuestionsResponse) Valid() bool {
	return r != nil && len(r.Questions) > 0
}

// InterviewFeedbackResponse is the strict schema expected from the LLM when
// reviewing a mock interview answer
type InterviewFeedbackResponse struct {
	Score           int      `json:"score"` // 0-10
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	SuggestedAnswer string   `json:"suggested_answer,omitempty"`
}

// Valid reports whether the response carries usable content
func (r *InterviewFeedbackResponse) Valid() bool {
	return r != nil && (len(r.Strengths) > 0 || len(r.Improvements) > 0)
}

// SalaryRange is an estimated compensation band
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period,omitempty"` // yearly, monthly
}

// SalaryIntelligenceResponse is the strict schema expected from the LLM for
// salary analysis
type SalaryIntelligenceResponse struct {
	SalaryRange       SalaryRange `json:"salary_range"`
	MarketPositioning string      `json:"market_positioning"`
	NegotiationTips   []string    `json:"negotiation_tips"`
}

// Valid reports whether the response carries usable content
func (r *SalaryIntelligenceResponse) Valid() bool {
	return r != nil && r.SalaryRange.Max > 0
}

// OptimizedResume is the strict schema expected from the LLM when rewriting a
// resume for a specific job
type OptimizedResume struct {
	OptimizedResume string   `json:"optimized_resume"`
	Improvements    []string `json:"improvements"`
	ATSScore        int      `json:"ats_score"`
	KeywordsAdded   []string `json:"keywords_added"`
	Recommendations []string `json:"recommendations"`
	MatchPercentage int      `json:"match_percentage"`
}

// Valid reports whether the response carries usable content
func (r *OptimizedResume) Valid() bool {
	return r != nil && r.OptimizedResume != ""
}
