package models

import "time"

// LearningResource points to external material for learning a skill
type LearningResource struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Platform string `json:"platform,omitempty"` // e.g. Coursera, Udemy, YouTube
	Type     string `json:"type,omitempty"`     // e.g. Course, Tutorial, Documentation
}

// CareerSkill is a skill entry in the career-path catalog
type CareerSkill struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	LearningResources []LearningResource `json:"learning_resources,omitempty"`
}

// CareerStage is one rung of a career path with its required skill IDs
type CareerStage struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	SkillsRequired []string `json:"skills_required"`
}

// CareerPath is an ordered progression of career stages
type CareerPath struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Stages      []CareerStage `json:"stages"`
}

// IndustryTransition describes moving between industries and what it takes
type IndustryTransition struct {
	FromIndustry          string   `json:"from_industry"`
	ToIndustry            string   `json:"to_industry"`
	RequiredSkills        []string `json:"required_skills"`
	TransitionDifficulty  string   `json:"transition_difficulty"` // Easy, Medium, Hard
	EstimatedMonths       int      `json:"estimated_transition_time_months"`
	CommonTransitionRoles []string `json:"common_transition_roles,omitempty"`
	SuccessRate           float64  `json:"success_rate"`
}

// StageMatch reports how well a skill set covers one career stage
type StageMatch struct {
	StageName       string   `json:"stage_name"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	TotalRequired   int      `json:"total_required"`
}

// PathRecommendation is one career path scored against a skill set
type PathRecommendation struct {
	CareerPath      CareerPath   `json:"career_path"`
	StagesMatch     []StageMatch `json:"stages_match"`
	OverallMatchPct float64      `json:"overall_match_percentage"`
}

// SkillsGapRequest asks which skills are missing for a target career stage
type SkillsGapRequest struct {
	CurrentSkillIDs    []string `json:"current_skill_ids" binding:"required"`
	TargetCareerPathID string   `json:"target_career_path_id" binding:"required"`
	TargetStageName    string   `json:"target_stage_name" binding:"required"`
}

// SkillsGapResponse lists current, required and missing skills for a stage
type SkillsGapResponse struct {
	TargetCareerPathID     string        `json:"target_career_path_id"`
	TargetStageName        string        `json:"target_stage_name"`
	CurrentSkills          []CareerSkill `json:"current_skills"`
	RequiredSkillsForStage []CareerSkill `json:"required_skills_for_stage"`
	MissingSkills          []CareerSkill `json:"missing_skills"`
	AllSkillsMet           bool          `json:"all_skills_met"`
}

// ExtractSkillIDsRequest asks for catalog skill IDs found in free text
type ExtractSkillIDsRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

// ExtractSkillIDsResponse lists catalog skills recognized in the text
type ExtractSkillIDsResponse struct {
	Success             bool     `json:"success"`
	SkillIDs            []string `json:"skill_ids"`
	ExtractedSkillNames []string `json:"extracted_skill_names"`
	Message             string   `json:"message,omitempty"`
}

// TransitionAnalysisRequest asks for transitions between two industries
type TransitionAnalysisRequest struct {
	CurrentIndustry string   `json:"current_industry" binding:"required"`
	TargetIndustry  string   `json:"target_industry" binding:"required"`
	CurrentSkills   []string `json:"current_skills,omitempty"`
}

// ResumeContext is the role/industry/seniority signal read out of free
// resume text
type ResumeContext struct {
	DetectedRoles      []string `json:"detected_roles"`
	IndustryIndicators []string `json:"industry_indicators"`
	ExperienceLevel    string   `json:"experience_level"` // junior, mid, senior
	RoleKeywords       []string `json:"role_keywords"`
	ConfidenceScore    float64  `json:"confidence_score"`
}

// IntelligentRecommendationRequest asks for context-aware path recommendations
type IntelligentRecommendationRequest struct {
	ResumeText      string   `json:"resume_text" binding:"required"`
	CurrentSkillIDs []string `json:"current_skill_ids"`
}

// IntelligentRecommendation is a career path scored by skills and resume
// context together
type IntelligentRecommendation struct {
	CareerPath      CareerPath    `json:"career_path"`
	StagesMatch     []StageMatch  `json:"stages_match"`
	OverallMatchPct float64       `json:"overall_match_percentage"`
	RelevanceScore  float64       `json:"relevance_score"`
	ConfidenceLevel string        `json:"confidence_level"`
	WhyRecommended  string        `json:"why_recommended"`
	ResumeAnalysis  ResumeContext `json:"resume_analysis"`
}

// TrajectoryRequest asks for a personalized timeline toward a career path
type TrajectoryRequest struct {
	CurrentSkillIDs    []string   `json:"current_skill_ids"`
	TargetCareerPathID string     `json:"target_career_path_id" binding:"required"`
	TargetStageName    string     `json:"target_stage_name,omitempty"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	ExperienceLevel    string     `json:"user_experience_level,omitempty"` // junior, mid, senior
}

// SkillMilestone is one skill to learn on a trajectory timeline
type SkillMilestone struct {
	SkillID          string    `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"` // 1-5 scale
	TargetDate       time.Time `json:"target_date"`
	EstimatedWeeks   int       `json:"estimated_learning_time_weeks"`
	DifficultyLevel  string    `json:"difficulty_level"` // Beginner, Intermediate, Advanced
}

// StageEvolution tracks planned progress through one career stage
type StageEvolution struct {
	StageName            string           `json:"stage_name"`
	StartDate            *time.Time       `json:"start_date,omitempty"`
	TargetCompletionDate time.Time        `json:"target_completion_date"`
	EstimatedMonths      int              `json:"estimated_duration_months"`
	SkillMilestones      []SkillMilestone `json:"skill_milestones"`
	CompletionPct        float64          `json:"completion_percentage"`
	Status               string           `json:"status"` // Not Started, In Progress, Completed
}

// CareerTrajectory is a full timeline from the current stage to the end of a
// career path
type CareerTrajectory struct {
	ID                   string           `json:"id"`
	CurrentStage         string           `json:"current_stage"`
	TargetCareerPathID   string           `json:"target_career_path_id"`
	TargetStage          string           `json:"target_stage"`
	StartDate            time.Time        `json:"start_date"`
	TargetCompletionDate time.Time        `json:"target_completion_date"`
	StageEvolutions      []StageEvolution `json:"stage_evolutions"`
	CurrentSkills        []string         `json:"current_skills"`
	SkillMilestones      []SkillMilestone `json:"skill_milestones"`
}

// SkillEvolutionRequest asks for projected proficiency growth
type SkillEvolutionRequest struct {
	SkillIDs       []string   `json:"skill_ids" binding:"required"`
	TimelineMonths int        `json:"timeline_months,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
}

// SkillLevelPoint is a projected proficiency level in one month
type SkillLevelPoint struct {
	Date  string  `json:"date"` // YYYY-MM
	Level float64 `json:"level"`
}

// SkillEvolution projects how proficiency in one skill grows over time
type SkillEvolution struct {
	SkillID               string            `json:"skill_id"`
	SkillName             string            `json:"skill_name"`
	ProjectedLevels       []SkillLevelPoint `json:"projected_levels"`
	LearningVelocity      float64           `json:"learning_velocity"`
	MasteryPredictionDate *time.Time        `json:"mastery_prediction_date,omitempty"`
}

// CareerGrowthPattern describes a typical progression archetype
type CareerGrowthPattern struct {
	PatternID             string     `json:"pattern_id"`
	PatternName           string     `json:"pattern_name"`
	Description           string     `json:"description"`
	TypicalProgression    []string   `json:"typical_progression"`
	AverageTimeframes     []int      `json:"average_timeframes"` // months between steps
	RequiredSkillCombos   [][]string `json:"required_skill_combinations"`
	IndustryApplicability []string   `json:"industry_applicability"`
	SuccessIndicators     []string   `json:"success_indicators"`
}
