package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelens/backend/agent"
	"github.com/resumelens/backend/models"
)

// InterviewHandler handles interview preparation requests
type InterviewHandler struct {
	agent *agent.ResumeAgent
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(resumeAgent *agent.ResumeAgent) *InterviewHandler {
	return &InterviewHandler{agent: resumeAgent}
}

// Questions handles interview question generation
// @Summary Generate interview questions
// @Description Generate tailored interview questions from a resume and job description using AI
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body models.InterviewQuestionsRequest true "Question generation request"
// @Success 200 {object} models.InterviewQuestionsResponse "Generated questions"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 503 {object} models.ErrorResponse "LLM unavailable"
// @Router /interview/questions [post]
func (h *InterviewHandler) Questions(c *gin.Context) {
	var req models.InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	result, err := h.agent.InterviewQuestions(c.Request.Context(), &req)
	if err != nil {
		respondLLMError(c, "Question generation failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Feedback handles mock interview answer review
// @Summary Review an interview answer
// @Description Score a candidate's answer to an interview question and suggest improvements using AI
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body models.InterviewFeedbackRequest true "Feedback request"
// @Success 200 {object} models.InterviewFeedbackResponse "Answer feedback"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 503 {object} models.ErrorResponse "LLM unavailable"
// @Router /interview/feedback [post]
func (h *InterviewHandler) Feedback(c *gin.Context) {
	var req models.InterviewFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	result, err := h.agent.InterviewFeedback(c.Request.Context(), &req)
	if err != nil {
		respondLLMError(c, "Answer review failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondLLMError maps LLM-layer failures to HTTP responses
func respondLLMError(c *gin.Context, message string, err error) {
	if errors.Is(err, agent.ErrLLMUnavailable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "AI features are not available on this deployment",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   message,
		Code:    http.StatusInternalServerError,
		Details: err.Error(),
	})
}
