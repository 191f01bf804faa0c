package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelens/backend/career"
	"github.com/resumelens/backend/models"
)

// CareerHandler serves the skills/career-path catalog endpoints
type CareerHandler struct {
	service *career.Service
}

// NewCareerHandler creates a new career handler
func NewCareerHandler(service *career.Service) *CareerHandler {
	return &CareerHandler{service: service}
}

// Skills lists the skill catalog
// @Summary List all skills
// @Description Retrieve every skill in the catalog, learning resources included
// @Tags Career
// @Produce json
// @Success 200 {array} models.CareerSkill "Skill catalog"
// @Router /career/skills [get]
func (h *CareerHandler) Skills(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Skills())
}

// LearningResources lists learning resources for one skill
// @Summary Get learning resources for a skill
// @Description Retrieve learning resources for a specific skill ID
// @Tags Career
// @Produce json
// @Param skill_id path string true "Skill ID"
// @Success 200 {array} models.LearningResource "Learning resources"
// @Failure 404 {object} models.ErrorResponse "Skill not found"
// @Router /career/skills/{skill_id}/learning-resources [get]
func (h *CareerHandler) LearningResources(c *gin.Context) {
	resources, err := h.service.LearningResources(c.Param("skill_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Skill not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// Paths lists all career paths
// @Summary List all career paths
// @Description Retrieve every career path with its stages and required skills
// @Tags Career
// @Produce json
// @Success 200 {array} models.CareerPath "Career paths"
// @Router /career/paths [get]
func (h *CareerHandler) Paths(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Paths())
}

// PathByID retrieves one career path
// @Summary Get a career path
// @Description Retrieve a specific career path by its ID
// @Tags Career
// @Produce json
// @Param path_id path string true "Career path ID"
// @Success 200 {object} models.CareerPath "Career path"
// @Failure 404 {object} models.ErrorResponse "Career path not found"
// @Router /career/paths/{path_id} [get]
func (h *CareerHandler) PathByID(c *gin.Context) {
	path, err := h.service.PathByID(c.Param("path_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Career path not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, path)
}

// Recommend scores career paths against the user's skills
// @Summary Recommend career paths
// @Description Score every career path against the given skill IDs and return them best-first
// @Tags Career
// @Accept json
// @Produce json
// @Param skill_ids body []string true "Current skill IDs"
// @Success 200 {array} models.PathRecommendation "Ranked recommendations"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /career/recommend [post]
func (h *CareerHandler) Recommend(c *gin.Context) {
	var skillIDs []string
	if err := c.ShouldBindJSON(&skillIDs); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.service.Recommend(skillIDs))
}

// SkillsGap performs a skills gap analysis for a target career stage
// @Summary Analyze skills gap
// @Description Report which skills are missing for a target stage of a career path
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.SkillsGapRequest true "Gap analysis request"
// @Success 200 {object} models.SkillsGapResponse "Gap analysis"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Path or stage not found"
// @Router /career/skills-gap [post]
func (h *CareerHandler) SkillsGap(c *gin.Context) {
	var req models.SkillsGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.GapAnalysis(req)
	if err != nil {
		if errors.Is(err, career.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "Career path or stage not found",
				Code:    http.StatusNotFound,
				Details: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Gap analysis failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExtractSkillIDs extracts catalog skill IDs from resume text
// @Summary Extract skill IDs from text
// @Description Find catalog skills mentioned in free-form resume text
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.ExtractSkillIDsRequest true "Extraction request"
// @Success 200 {object} models.ExtractSkillIDsResponse "Extracted skill IDs"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /career/extract-skill-ids [post]
func (h *CareerHandler) ExtractSkillIDs(c *gin.Context) {
	var req models.ExtractSkillIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.service.ExtractSkillIDs(req.ResumeText))
}

// IntelligentRecommend recommends career paths using resume context
// @Summary Recommend career paths from resume context
// @Description Combine skill coverage with role, industry and seniority signals read from the resume text. Returns at most the four most relevant paths.
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.IntelligentRecommendationRequest true "Recommendation request"
// @Success 200 {array} models.IntelligentRecommendation "Ranked recommendations"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /career/intelligent-recommendation [post]
func (h *CareerHandler) IntelligentRecommend(c *gin.Context) {
	var req models.IntelligentRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.service.RecommendIntelligent(req))
}

// GenerateTrajectory plans a timeline toward a career path
// @Summary Generate a career trajectory
// @Description Plan a stage-by-stage timeline with skill milestones from the user's current skills to the end of a career path
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.TrajectoryRequest true "Trajectory request"
// @Success 200 {object} models.CareerTrajectory "Planned trajectory"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Career path not found"
// @Router /career/generate-trajectory [post]
func (h *CareerHandler) GenerateTrajectory(c *gin.Context) {
	var req models.TrajectoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	trajectory, err := h.service.GenerateTrajectory(req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Career path not found",
			Code:    http.StatusNotFound,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, trajectory)
}

// SkillEvolution projects proficiency growth for a set of skills
// @Summary Project skill evolution
// @Description Project month-by-month proficiency growth per skill with a predicted mastery date
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.SkillEvolutionRequest true "Evolution request"
// @Success 200 {array} models.SkillEvolution "Projected evolutions"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /career/skill-evolution [post]
func (h *CareerHandler) SkillEvolution(c *gin.Context) {
	var req models.SkillEvolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.service.ProjectSkillEvolution(req))
}

// GrowthPatterns lists typical career progression archetypes
// @Summary List career growth patterns
// @Description Retrieve the typical progression archetypes with timeframes and required skill combinations
// @Tags Career
// @Produce json
// @Success 200 {array} models.CareerGrowthPattern "Growth patterns"
// @Router /career/growth-patterns [get]
func (h *CareerHandler) GrowthPatterns(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GrowthPatterns())
}

// GrowthPatternByID retrieves one growth pattern
// @Summary Get a career growth pattern
// @Description Retrieve a specific growth pattern by its ID
// @Tags Career
// @Produce json
// @Param pattern_id path string true "Growth pattern ID"
// @Success 200 {object} models.CareerGrowthPattern "Growth pattern"
// @Failure 404 {object} models.ErrorResponse "Growth pattern not found"
// @Router /career/growth-patterns/{pattern_id} [get]
func (h *CareerHandler) GrowthPatternByID(c *gin.Context) {
	pattern, err := h.service.GrowthPatternByID(c.Param("pattern_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Growth pattern not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// TransitionAnalysis analyzes industry transition pathways
// @Summary Analyze an industry transition
// @Description Return transition pathways between two industries, adjusted for the user's current skills
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.TransitionAnalysisRequest true "Transition analysis request"
// @Success 200 {array} models.IndustryTransition "Transition pathways"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /career/industry-transition [post]
func (h *CareerHandler) TransitionAnalysis(c *gin.Context) {
	var req models.TransitionAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.service.AnalyzeTransition(req))
}
