package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumelens/backend/agent"
	"github.com/resumelens/backend/auth"
	"github.com/resumelens/backend/models"
	"github.com/resumelens/backend/storage"
	"github.com/resumelens/backend/utils"
)

// AnalyzeHandler handles resume analysis requests
type AnalyzeHandler struct {
	agent           *agent.ResumeAgent
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	extractor       *utils.DocumentExtractor
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(
	resumeAgent *agent.ResumeAgent,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		agent:           resumeAgent,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		extractor:       utils.NewDocumentExtractor(),
	}
}

// Analyze handles resume analysis requests
// @Summary Analyze a resume
// @Description Analyze resume text (or an uploaded file) and optionally match it against a job description. Returns a structured report plus an AI narrative when available. Authentication optional - authenticated users without input fall back to their saved resume.
// @Tags Analysis
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param request body models.AnalyzeRequest false "Analysis request (JSON)"
// @Param resume_file formData file false "Resume file (PDF, DOCX, TXT)"
// @Param resume_text formData string false "Resume text content"
// @Param job_description formData string false "Job description to match against"
// @Success 200 {object} models.AnalyzeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		var ok bool
		req, ok = h.parseMultipartRequest(c)
		if !ok {
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request body",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return
		}
	}

	// Authenticated users without input fall back to their saved resume
	if req.ResumeText == "" {
		if claims := auth.GetAuthClaims(c); claims != nil && h.firestoreClient != nil && h.storageClient != nil {
			if text, ok := h.loadSavedResume(c, claims.Email); ok {
				req.ResumeText = text
			}
		}
	}

	if req.ResumeText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Please provide resume text or upload a resume file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	resp, err := h.agent.Analyze(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[AnalyzeHandler] Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Analysis failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeStructured handles deterministic-only analysis requests
// @Summary Analyze a resume deterministically
// @Description Analyze resume text with the structured pipeline only. No AI narrative, no cache; the same input always yields the same report.
// @Tags Analysis
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.AnalyzeRequest false "Analysis request (JSON)"
// @Param resume_file formData file false "Resume file (PDF, DOCX, TXT)"
// @Param resume_text formData string false "Resume text content"
// @Param job_description formData string false "Job description to match against"
// @Success 200 {object} models.Report "Structured report"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /analyze/structured [post]
func (h *AnalyzeHandler) AnalyzeStructured(c *gin.Context) {
	var req models.AnalyzeRequest

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		var ok bool
		req, ok = h.parseMultipartRequest(c)
		if !ok {
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request body",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return
		}
	}

	if req.ResumeText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Please provide resume text or upload a resume file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, h.agent.AnalyzeStructured(req.ResumeText, req.JobDescription))
}

// MatchSkills handles strict skill matching requests
// @Summary Match skills strictly
// @Description Extract skills from resume and job description and count exact matches only. No related-skill credit is applied.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.MatchSkillsRequest true "Match request"
// @Success 200 {object} models.StrictMatchResult "Match result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /match-skills [post]
func (h *AnalyzeHandler) MatchSkills(c *gin.Context) {
	var req models.MatchSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.agent.MatchSkills(req.ResumeText, req.JobDescription))
}

// OptimizeResume handles AI resume optimization requests
// @Summary Optimize a resume for a job
// @Description Rewrite the resume to better target a specific job description using AI
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.OptimizeResumeRequest true "Optimization request"
// @Success 200 {object} models.OptimizedResume "Optimized resume"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 503 {object} models.ErrorResponse "LLM unavailable"
// @Router /optimize-resume [post]
func (h *AnalyzeHandler) OptimizeResume(c *gin.Context) {
	var req models.OptimizeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	result, err := h.agent.OptimizeResume(c.Request.Context(), &req)
	if err != nil {
		respondLLMError(c, "Resume optimization failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseMultipartRequest pulls the analysis inputs out of a multipart form,
// extracting text from an uploaded resume file when present. Returns false
// after writing an error response.
func (h *AnalyzeHandler) parseMultipartRequest(c *gin.Context) (models.AnalyzeRequest, bool) {
	req := models.AnalyzeRequest{
		ResumeText:     c.PostForm("resume_text"),
		JobDescription: c.PostForm("job_description"),
	}

	file, header, err := c.Request.FormFile("resume_file")
	if err != nil {
		// No file attached, text-only form
		return req, true
	}
	defer file.Close()

	if !h.extractor.IsSupportedFormat(header.Filename) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unsupported file format. Use PDF, DOCX or TXT",
			Code:  http.StatusBadRequest,
		})
		return req, false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Could not read the uploaded file",
			Code:  http.StatusBadRequest,
		})
		return req, false
	}

	text, err := h.extractor.ExtractTextFromBytes(content, header.Filename)

	// Scanned or malformed PDFs defeat local parsing; let the model read them
	if (err != nil || strings.TrimSpace(text) == "") &&
		strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		llmText, llmErr := h.agent.ExtractResumeFromPDF(c.Request.Context(), content, header.Filename)
		if llmErr == nil {
			text, err = llmText, nil
		} else if !errors.Is(llmErr, agent.ErrLLMUnavailable) {
			log.Printf("[AnalyzeHandler] PDF fallback extraction failed for %s: %v", header.Filename, llmErr)
		}
	}

	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to extract text from %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Could not extract text from the uploaded file",
			Code:  http.StatusBadRequest,
		})
		return req, false
	}

	req.ResumeText = text
	return req, true
}

// loadSavedResume downloads and extracts the user's stored resume
func (h *AnalyzeHandler) loadSavedResume(c *gin.Context, email string) (string, bool) {
	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), email)
	if err != nil || user.ResumeURL == "" {
		return "", false
	}

	content, err := h.storageClient.DownloadResume(c.Request.Context(), user.ResumeURL)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to download saved resume: %v", err)
		return "", false
	}

	text, err := h.extractor.ExtractTextFromBytes(content, user.ResumeURL)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to extract saved resume text: %v", err)
		return "", false
	}

	log.Printf("[AnalyzeHandler] Using saved resume for user: %s", email)
	return text, true
}
