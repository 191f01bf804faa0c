// Package career serves the skills/career-path catalog: path recommendation,
// skills gap analysis, skill extraction from free text and industry
// transition analysis. All data is static and read-only, so the service is
// safe for concurrent use.
package career

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/resumelens/backend/models"
)

// ErrNotFound is returned when a skill, path or stage ID does not exist
var ErrNotFound = errors.New("career: not found")

// Service answers career-path queries against the built-in catalog
type Service struct {
	skillsByID map[string]models.CareerSkill
}

// NewService builds the catalog index
func NewService() *Service {
	s := &Service{skillsByID: make(map[string]models.CareerSkill, len(skillsCatalog))}
	for _, skill := range skillsCatalog {
		s.skillsByID[skill.ID] = skill
	}
	return s
}

// Skills returns every skill in the catalog, learning resources included
func (s *Service) Skills() []models.CareerSkill {
	return skillsCatalog
}

// SkillByID looks up one skill
func (s *Service) SkillByID(id string) (models.CareerSkill, bool) {
	skill, ok := s.skillsByID[id]
	return skill, ok
}

// LearningResources returns the learning resources for a skill.
// A skill without resources yields an empty list, an unknown ID ErrNotFound.
func (s *Service) LearningResources(skillID string) ([]models.LearningResource, error) {
	skill, ok := s.skillsByID[skillID]
	if !ok {
		return nil, fmt.Errorf("skill %q: %w", skillID, ErrNotFound)
	}
	if skill.LearningResources == nil {
		return []models.LearningResource{}, nil
	}
	return skill.LearningResources, nil
}

// Paths returns every career path
func (s *Service) Paths() []models.CareerPath {
	return careerPathsCatalog
}

// PathByID looks up one career path
func (s *Service) PathByID(id string) (models.CareerPath, error) {
	for _, p := range careerPathsCatalog {
		if p.ID == id {
			return p, nil
		}
	}
	return models.CareerPath{}, fmt.Errorf("career path %q: %w", id, ErrNotFound)
}

// Recommend scores every career path against the user's skill IDs. Each
// stage gets matching/missing skill lists (in the stage's required order) and
// a coverage percentage; the path's overall score is the average across its
// stages. Results are sorted by overall score, best first.
func (s *Service) Recommend(currentSkillIDs []string) []models.PathRecommendation {
	userSkills := make(map[string]bool, len(currentSkillIDs))
	for _, id := range currentSkillIDs {
		userSkills[id] = true
	}

	recommendations := make([]models.PathRecommendation, 0, len(careerPathsCatalog))
	for _, path := range careerPathsCatalog {
		rec := models.PathRecommendation{
			CareerPath:  path,
			StagesMatch: make([]models.StageMatch, 0, len(path.Stages)),
		}

		var sum float64
		for _, stage := range path.Stages {
			match := models.StageMatch{
				StageName:      stage.Name,
				MatchingSkills: []string{},
				MissingSkills:  []string{},
				TotalRequired:  len(stage.SkillsRequired),
			}
			for _, id := range stage.SkillsRequired {
				if userSkills[id] {
					match.MatchingSkills = append(match.MatchingSkills, id)
				} else {
					match.MissingSkills = append(match.MissingSkills, id)
				}
			}
			if match.TotalRequired > 0 {
				match.MatchPercentage = round1(float64(len(match.MatchingSkills)) / float64(match.TotalRequired) * 100)
			}
			sum += match.MatchPercentage
			rec.StagesMatch = append(rec.StagesMatch, match)
		}
		if len(rec.StagesMatch) > 0 {
			rec.OverallMatchPct = round1(sum / float64(len(rec.StagesMatch)))
		}
		recommendations = append(recommendations, rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].OverallMatchPct > recommendations[j].OverallMatchPct
	})
	return recommendations
}

// GapAnalysis reports which skills are still missing for a target stage of a
// career path. Unknown current skill IDs are silently dropped.
func (s *Service) GapAnalysis(req models.SkillsGapRequest) (*models.SkillsGapResponse, error) {
	path, err := s.PathByID(req.TargetCareerPathID)
	if err != nil {
		return nil, err
	}

	var stage *models.CareerStage
	for i := range path.Stages {
		if path.Stages[i].Name == req.TargetStageName {
			stage = &path.Stages[i]
			break
		}
	}
	if stage == nil {
		return nil, fmt.Errorf("stage %q in career path %q: %w", req.TargetStageName, req.TargetCareerPathID, ErrNotFound)
	}

	current := make(map[string]bool, len(req.CurrentSkillIDs))
	currentDetails := []models.CareerSkill{}
	for _, id := range req.CurrentSkillIDs {
		if skill, ok := s.skillsByID[id]; ok {
			current[id] = true
			currentDetails = append(currentDetails, skill)
		}
	}

	requiredDetails := []models.CareerSkill{}
	missingDetails := []models.CareerSkill{}
	for _, id := range stage.SkillsRequired {
		skill, ok := s.skillsByID[id]
		if !ok {
			continue
		}
		requiredDetails = append(requiredDetails, skill)
		if !current[id] {
			missingDetails = append(missingDetails, skill)
		}
	}

	return &models.SkillsGapResponse{
		TargetCareerPathID:     req.TargetCareerPathID,
		TargetStageName:        req.TargetStageName,
		CurrentSkills:          currentDetails,
		RequiredSkillsForStage: requiredDetails,
		MissingSkills:          missingDetails,
		AllSkillsMet:           len(missingDetails) == 0,
	}, nil
}

// ExtractSkillIDs finds catalog skills mentioned in free text by lowercase
// substring match on the skill name or ID
func (s *Service) ExtractSkillIDs(resumeText string) models.ExtractSkillIDsResponse {
	if strings.TrimSpace(resumeText) == "" {
		return models.ExtractSkillIDsResponse{
			SkillIDs:            []string{},
			ExtractedSkillNames: []string{},
			Message:             "Resume text is empty.",
		}
	}

	text := strings.ToLower(resumeText)
	ids := []string{}
	names := []string{}
	for _, skill := range skillsCatalog {
		if strings.Contains(text, strings.ToLower(skill.Name)) || strings.Contains(text, skill.ID) {
			ids = append(ids, skill.ID)
			names = append(names, skill.Name)
		}
	}

	resp := models.ExtractSkillIDsResponse{
		Success:             true,
		SkillIDs:            ids,
		ExtractedSkillNames: names,
	}
	if len(ids) == 0 {
		resp.Message = "No known skills found in the resume text."
	} else {
		resp.Message = fmt.Sprintf("Successfully extracted %d skill(s).", len(ids))
	}
	return resp
}

// AnalyzeTransition returns transition pathways between two industries.
// Difficulty and timeline shrink when the user already holds most of the
// required skills. With no catalog match a generic transition is suggested.
func (s *Service) AnalyzeTransition(req models.TransitionAnalysisRequest) []models.IndustryTransition {
	current := make(map[string]bool, len(req.CurrentSkills))
	for _, id := range req.CurrentSkills {
		current[id] = true
	}

	relevant := []models.IndustryTransition{}
	for _, t := range industryTransitionsCatalog {
		if !strings.EqualFold(t.FromIndustry, req.CurrentIndustry) || !strings.EqualFold(t.ToIndustry, req.TargetIndustry) {
			continue
		}
		overlap := 0
		for _, id := range t.RequiredSkills {
			if current[id] {
				overlap++
			}
		}
		// adjust a copy, never the catalog entry
		required := float64(len(t.RequiredSkills))
		if required > 0 && float64(overlap) >= required*0.8 {
			t.TransitionDifficulty = "Easy"
			t.EstimatedMonths = maxInt(2, t.EstimatedMonths/2)
		} else if required > 0 && float64(overlap) >= required*0.5 {
			t.TransitionDifficulty = "Medium"
			t.EstimatedMonths = maxInt(3, t.EstimatedMonths*3/4)
		}
		relevant = append(relevant, t)
	}

	if len(relevant) == 0 {
		relevant = append(relevant, models.IndustryTransition{
			FromIndustry:          req.CurrentIndustry,
			ToIndustry:            req.TargetIndustry,
			RequiredSkills:        []string{"communication", "problem_solving", "data_analysis", "project_management"},
			TransitionDifficulty:  "Medium",
			EstimatedMonths:       8,
			CommonTransitionRoles: []string{"Business Analyst", "Project Manager", "Operations Specialist"},
			SuccessRate:           0.70,
		})
	}
	return relevant
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
