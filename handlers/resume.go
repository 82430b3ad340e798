package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumeparse/backend/models"
	"github.com/resumeparse/backend/parser"
	"github.com/resumeparse/backend/utils"
)

// ResumeHandler handles resume parsing requests
type ResumeHandler struct {
	service   *parser.Service
	documents *utils.DocumentExtractor
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(service *parser.Service) *ResumeHandler {
	return &ResumeHandler{
		service:   service,
		documents: utils.NewDocumentExtractor(),
	}
}

// ParseResume parses resume content into the canonical record
// @Summary Parse resume
// @Description Parse resume text or a JSON document into structured skills, experience, education, and projects. Supports multipart/form-data for file upload (PDF, DOCX, TXT).
// @Tags Resume
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.ParseResumeRequest false "Resume parse request (JSON)"
// @Param resume_file formData file false "Resume file to parse"
// @Param raw_text formData string false "Resume text content"
// @Success 200 {object} models.ResumeRecord "Canonical resume record"
// @Failure 400 {object} models.ErrorResponse "Unreadable request envelope"
// @Router /parse_resume [post]
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	if strings.Contains(c.ContentType(), "multipart/form-data") {
		h.parseFromForm(c)
		return
	}

	var req models.ParseResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	// Every raw_text value is valid input, including null; the parser
	// never fails
	c.JSON(http.StatusOK, h.service.Parse(c.Request.Context(), req.RawText))
}

func (h *ResumeHandler) parseFromForm(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume_file")
	if err != nil {
		// No file: fall back to the text form field
		text := c.PostForm("raw_text")
		if text == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "resume_file or raw_text is required",
				Code:  http.StatusBadRequest,
			})
			return
		}
		c.JSON(http.StatusOK, h.service.Parse(c.Request.Context(), &text))
		return
	}
	defer file.Close()

	text, err := h.documents.ExtractText(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Failed to read resume file",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	log.Printf("[ResumeHandler] Received resume file: %s", header.Filename)
	c.JSON(http.StatusOK, h.service.Parse(c.Request.Context(), &text))
}
