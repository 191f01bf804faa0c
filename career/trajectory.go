package career

import (
	"fmt"
	"math"
	"time"

	"github.com/resumelens/backend/models"
)

// paceMultiplier scales per-skill learning time by self-reported seniority
var paceMultiplier = map[string]float64{"junior": 1.5, "mid": 1.0, "senior": 0.8}

type skillDifficultyInfo struct {
	Level string
	Weeks int
}

var defaultDifficulty = skillDifficultyInfo{Level: "Intermediate", Weeks: 4}

// skillDifficulty holds per-skill learning difficulty and base weeks; skills
// not listed fall back to defaultDifficulty
var skillDifficulty = map[string]skillDifficultyInfo{
	"html_css":         {Level: "Beginner", Weeks: 2},
	"javascript":       {Level: "Intermediate", Weeks: 4},
	"react":            {Level: "Intermediate", Weeks: 6},
	"python":           {Level: "Intermediate", Weeks: 4},
	"machine_learning": {Level: "Advanced", Weeks: 8},
	"kubernetes":       {Level: "Advanced", Weeks: 10},
	"data_analysis":    {Level: "Intermediate", Weeks: 4},
	"ui_ux_design":     {Level: "Intermediate", Weeks: 5},
}

// evolutionProfile maps difficulty to a starting proficiency and a monthly
// learning velocity for skill-evolution projections
var evolutionProfile = map[string]struct {
	Base     float64
	Velocity float64
}{
	"Beginner":     {Base: 2.0, Velocity: 1.2},
	"Intermediate": {Base: 1.5, Velocity: 1.0},
	"Advanced":     {Base: 1.0, Velocity: 0.8},
}

// GrowthPatterns returns the progression archetypes in the catalog
func (s *Service) GrowthPatterns() []models.CareerGrowthPattern {
	return growthPatternsCatalog
}

// GrowthPatternByID looks up one growth pattern
func (s *Service) GrowthPatternByID(id string) (models.CareerGrowthPattern, error) {
	for _, p := range growthPatternsCatalog {
		if p.PatternID == id {
			return p, nil
		}
	}
	return models.CareerGrowthPattern{}, fmt.Errorf("growth pattern %q: %w", id, ErrNotFound)
}

// GenerateTrajectory plans a stage-by-stage timeline from the user's current
// skills to the end of a career path. The last stage already covered at 70%+
// counts as the current stage; each later stage gets milestones for its
// missing skills, sized by difficulty and the user's learning pace. The plan
// is fully determined by its inputs.
func (s *Service) GenerateTrajectory(req models.TrajectoryRequest) (*models.CareerTrajectory, error) {
	path, err := s.PathByID(req.TargetCareerPathID)
	if err != nil {
		return nil, err
	}

	targetStage := req.TargetStageName
	if targetStage == "" && len(path.Stages) > 0 {
		targetStage = path.Stages[len(path.Stages)-1].Name
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	pace, ok := paceMultiplier[req.ExperienceLevel]
	if !ok {
		pace = paceMultiplier["mid"]
	}

	evolutions := s.stageEvolutions(path, req.CurrentSkillIDs, start, pace)

	completion := start.AddDate(1, 0, 0)
	if len(evolutions) > 0 {
		completion = evolutions[len(evolutions)-1].TargetCompletionDate
	}

	milestones := []models.SkillMilestone{}
	for _, ev := range evolutions {
		milestones = append(milestones, ev.SkillMilestones...)
	}

	currentStage := "Entry Level"
	for _, ev := range evolutions {
		if ev.Status == "In Progress" || ev.Status == "Completed" {
			currentStage = ev.StageName
		}
	}

	currentSkills := req.CurrentSkillIDs
	if currentSkills == nil {
		currentSkills = []string{}
	}

	return &models.CareerTrajectory{
		ID:                   fmt.Sprintf("trajectory_%s_%s", path.ID, start.Format("20060102")),
		CurrentStage:         currentStage,
		TargetCareerPathID:   path.ID,
		TargetStage:          targetStage,
		StartDate:            start,
		TargetCompletionDate: completion,
		StageEvolutions:      evolutions,
		CurrentSkills:        currentSkills,
		SkillMilestones:      milestones,
	}, nil
}

func (s *Service) stageEvolutions(path models.CareerPath, currentSkills []string, start time.Time, pace float64) []models.StageEvolution {
	have := make(map[string]bool, len(currentSkills))
	for _, id := range currentSkills {
		have[id] = true
	}

	startIndex := 0
	for i, stage := range path.Stages {
		if stageCoverage(stage.SkillsRequired, have) >= 70 {
			startIndex = i
		}
	}

	evolutions := []models.StageEvolution{}
	cursor := start
	for i := startIndex; i < len(path.Stages); i++ {
		stage := path.Stages[i]

		missing := []string{}
		for _, id := range stage.SkillsRequired {
			if !have[id] {
				missing = append(missing, id)
			}
		}
		pct := stageCoverage(stage.SkillsRequired, have)

		milestones := s.skillMilestones(missing, cursor, pace)

		weeks := 0
		for _, m := range milestones {
			weeks += m.EstimatedWeeks
		}
		months := maxInt(3, weeks/4)
		target := cursor.AddDate(0, 0, months*30)

		status := "Not Started"
		switch {
		case pct >= 100:
			status = "Completed"
		case pct > 0:
			status = "In Progress"
		}

		ev := models.StageEvolution{
			StageName:            stage.Name,
			TargetCompletionDate: target,
			EstimatedMonths:      months,
			SkillMilestones:      milestones,
			CompletionPct:        round1(pct),
			Status:               status,
		}
		if i == startIndex {
			stageStart := cursor
			ev.StartDate = &stageStart
		}
		evolutions = append(evolutions, ev)

		// one month buffer before the next stage begins
		cursor = target.AddDate(0, 0, 30)
	}
	return evolutions
}

func (s *Service) skillMilestones(skillIDs []string, start time.Time, pace float64) []models.SkillMilestone {
	milestones := []models.SkillMilestone{}
	cursor := start
	for _, id := range skillIDs {
		skill, ok := s.skillsByID[id]
		if !ok {
			continue
		}
		diff, ok := skillDifficulty[id]
		if !ok {
			diff = defaultDifficulty
		}

		weeks := maxInt(1, int(float64(diff.Weeks)*pace))
		target := cursor.AddDate(0, 0, weeks*7)

		milestones = append(milestones, models.SkillMilestone{
			SkillID:          id,
			SkillName:        skill.Name,
			ProficiencyLevel: 3,
			TargetDate:       target,
			EstimatedWeeks:   weeks,
			DifficultyLevel:  diff.Level,
		})

		// one week buffer between skills
		cursor = target.AddDate(0, 0, 7)
	}
	return milestones
}

// ProjectSkillEvolution projects month-by-month proficiency growth for each
// known skill. Harder skills start lower and grow slower; mastery is
// predicted for the first month the level reaches 4.5. Unknown skill IDs are
// silently dropped.
func (s *Service) ProjectSkillEvolution(req models.SkillEvolutionRequest) []models.SkillEvolution {
	months := req.TimelineMonths
	if months <= 0 {
		months = 24
	}
	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	evolutions := []models.SkillEvolution{}
	for _, id := range req.SkillIDs {
		skill, ok := s.skillsByID[id]
		if !ok {
			continue
		}
		diff, ok := skillDifficulty[id]
		if !ok {
			diff = defaultDifficulty
		}
		profile := evolutionProfile[diff.Level]

		level := profile.Base
		points := make([]models.SkillLevelPoint, 0, months)
		var mastery *time.Time
		for i := 1; i <= months; i++ {
			level = math.Min(5, level+profile.Velocity*0.2)
			display := round1(level)
			at := start.AddDate(0, 0, 30*i)
			points = append(points, models.SkillLevelPoint{
				Date:  at.Format("2006-01"),
				Level: display,
			})
			if mastery == nil && display >= 4.5 {
				when := at
				mastery = &when
			}
		}

		evolutions = append(evolutions, models.SkillEvolution{
			SkillID:               id,
			SkillName:             skill.Name,
			ProjectedLevels:       points,
			LearningVelocity:      profile.Velocity,
			MasteryPredictionDate: mastery,
		})
	}
	return evolutions
}

func stageCoverage(required []string, have map[string]bool) float64 {
	if len(required) == 0 {
		return 100
	}
	n := 0
	for _, id := range required {
		if have[id] {
			n++
		}
	}
	return float64(n) / float64(len(required)) * 100
}
