package v1

import (
	"net/http"
	"strconv"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	careerUC domain.CareerUsecase
}

// NewCareerHandler registers the career suggestion and catalog routes.
func NewCareerHandler(r *gin.RouterGroup, careerUC domain.CareerUsecase) {
	handler := &CareerHandler{careerUC: careerUC}

	career := r.Group("/career")
	{
		career.POST("/suggest", handler.SuggestCareerPaths)
		career.GET("/paths", handler.ListCareerPaths)
		career.GET("/paths/:id", handler.GetCareerPath)
	}
}

// SuggestCareerPaths godoc
// @Summary      Suggest career paths
// @Description  Builds a profile prompt from the supplied skills, experience and optional coding-activity summaries, asks the AI model for suggestions and returns the normalized list.
// @Tags         career
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CareerSuggestionRequest  true  "Developer profile"
// @Success      200      {object}  response.Response{data=[]domain.CareerPath}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /career/suggest [post]
func (h *CareerHandler) SuggestCareerPaths(c *gin.Context) {
	var req domain.CareerSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body: " + err.Error()))
		return
	}

	paths, err := h.careerUC.SuggestCareerPaths(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Career suggestions generated", paths)
}

// ListCareerPaths godoc
// @Summary      List the career path catalog
// @Tags         career
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CareerPath}
// @Router       /career/paths [get]
func (h *CareerHandler) ListCareerPaths(c *gin.Context) {
	paths, err := h.careerUC.ListCareerPaths(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Career paths", paths)
}

// GetCareerPath godoc
// @Summary      Get one career path by ID
// @Tags         career
// @Produce      json
// @Param        id   path      int  true  "Career path ID"
// @Success      200  {object}  response.Response{data=domain.CareerPath}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /career/paths/{id} [get]
func (h *CareerHandler) GetCareerPath(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.Validation("Career path ID must be an integer"))
		return
	}

	path, err := h.careerUC.GetCareerPath(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Career path", path)
}
