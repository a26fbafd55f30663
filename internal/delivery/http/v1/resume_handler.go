package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps resume uploads at 5 MB, matching the frontend limit.
const maxUploadBytes = 5 << 20

type ResumeHandler struct {
	resumeUC  domain.ResumeUsecase
	uploadDir string
}

// NewResumeHandler registers the resume upload and analysis routes.
func NewResumeHandler(r *gin.RouterGroup, upload *gin.RouterGroup, resumeUC domain.ResumeUsecase, uploadDir string) {
	handler := &ResumeHandler{
		resumeUC:  resumeUC,
		uploadDir: uploadDir,
	}

	upload.POST("/resume/upload", handler.UploadResume)
	r.GET("/resume/:file_id/analysis", handler.GetAnalysis)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Accepts a PDF resume, extracts its text and analyzes it into structured skills, titles, education, experience, languages and certifications.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file (PDF)"
// @Success      200     {object}  response.Response{data=domain.ResumeUploadResponse}
// @Failure      400     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Router       /resume/upload [post]
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.Validation("No resume file provided"))
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.Error(apperror.Validation("Only PDF files are supported"))
		return
	}

	fileID := uuid.NewString()
	dst := filepath.Join(h.uploadDir, fileID+".pdf")
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	result, err := h.resumeUC.ProcessResume(c.Request.Context(), fileID, file.Filename, dst)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analyzed successfully", result)
}

// GetAnalysis godoc
// @Summary      Get a stored resume analysis
// @Description  Returns the analysis produced when the resume was uploaded.
// @Tags         resume
// @Produce      json
// @Param        file_id  path      string  true  "File ID returned by upload"
// @Success      200      {object}  response.Response{data=domain.ResumeUploadResponse}
// @Failure      404      {object}  response.Response
// @Router       /resume/{file_id}/analysis [get]
func (h *ResumeHandler) GetAnalysis(c *gin.Context) {
	fileID := c.Param("file_id")

	result, err := h.resumeUC.GetAnalysis(c.Request.Context(), fileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analysis", result)
}
