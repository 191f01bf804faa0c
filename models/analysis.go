package models

// ExperienceEntry represents one work experience item extracted from a resume.
// Fields are optional: the fallback line-scanning path may leave company or
// description empty.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents one education item extracted from a resume
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// RelatedMatch records a job skill that was matched through the knowledge
// graph rather than directly
type RelatedMatch struct {
	JobSkill   string   `json:"job_skill"`
	MatchedVia []string `json:"matched_via"`
}

// MatchResult is the outcome of related-credit skill matching.
// Every job skill lands in exactly one of direct, related or missing.
type MatchResult struct {
	MatchPercentage float64        `json:"match_percentage"`
	DirectMatches   []string       `json:"direct_matches"`
	RelatedMatches  []RelatedMatch `json:"related_matches"`
	MissingSkills   []string       `json:"missing_skills"`
}

// StrictMatchResult is the outcome of the direct-only matching mode used by
// the simpler tool path. No knowledge-graph credit is applied.
type StrictMatchResult struct {
	MatchedSkills        []string `json:"matched_skills"`
	ResumeSkills         []string `json:"resume_skills"`
	JobDescriptionSkills []string `json:"job_description_skills"`
	MatchPercentage      float64  `json:"match_percentage"`
}

// BasicInfo summarizes the structured facts pulled from a resume
type BasicInfo struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
}

// Assessment holds the heuristic strengths/weaknesses/suggestions lists
type Assessment struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// Report is the full structured analysis of a resume, optionally including a
// job match when a job description was supplied
type Report struct {
	BasicInfo BasicInfo    `json:"basic_info"`
	Analysis  Assessment   `json:"analysis"`
	JobMatch  *MatchResult `json:"job_match,omitempty"`
	Summary   string       `json:"summary"`
}
