package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelens/backend/agent"
	"github.com/resumelens/backend/models"
)

// SalaryHandler handles salary intelligence requests
type SalaryHandler struct {
	agent *agent.ResumeAgent
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(resumeAgent *agent.ResumeAgent) *SalaryHandler {
	return &SalaryHandler{agent: resumeAgent}
}

// Intelligence handles salary estimation requests
// @Summary Estimate salary range
// @Description Estimate a realistic salary range for the candidate in a target role and location using AI
// @Tags Salary
// @Accept json
// @Produce json
// @Param request body models.SalaryIntelligenceRequest true "Salary analysis request"
// @Success 200 {object} models.SalaryIntelligenceResponse "Salary analysis"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 503 {object} models.ErrorResponse "LLM unavailable"
// @Router /salary/intelligence [post]
func (h *SalaryHandler) Intelligence(c *gin.Context) {
	var req models.SalaryIntelligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	result, err := h.agent.SalaryIntelligence(c.Request.Context(), &req)
	if err != nil {
		respondLLMError(c, "Salary analysis failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
