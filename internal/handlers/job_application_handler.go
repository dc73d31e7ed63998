package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobApplicationHandler struct {
	BaseHandler
	applicationService services.JobApplicationService
}

func NewJobApplicationHandler(applicationService services.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{
		BaseHandler:        NewBaseHandler(),
		applicationService: applicationService,
	}
}

func (h *JobApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job-applications", h.Create)
	rg.GET("/job-posts/:jobPostId/applications", h.ListForJobPost)
}

type listApplicationsQuery struct {
	EmployerID string `form:"employer_id" validate:"required"`
}

// Create godoc
// @Summary Submit an application to a job post
// @Description Open endpoint; applicants do not authenticate.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param request body dto.CreateJobApplicationRequest true "Application data"
// @Success 201 {object} dto.JobApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /job-applications [post]
func (h *JobApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListForJobPost godoc
// @Summary List the applications received by a job post
// @Description Only the owning employer sees the applications; everyone
// @Description else gets an empty list.
// @Tags job-applications
// @Produce json
// @Param jobPostId path string true "Job post id"
// @Param employer_id query string true "Requesting employer id"
// @Success 200 {array} dto.JobApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /job-posts/{jobPostId}/applications [get]
func (h *JobApplicationHandler) ListForJobPost(c *gin.Context) {
	var query listApplicationsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	applications, err := h.applicationService.ListForJobPost(h.GetDB(c), c.Param("jobPostId"), query.EmployerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
