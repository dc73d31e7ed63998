package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobPostHandler struct {
	BaseHandler
	jobPostService services.JobPostService
}

func NewJobPostHandler(jobPostService services.JobPostService) *JobPostHandler {
	return &JobPostHandler{
		BaseHandler:    NewBaseHandler(),
		jobPostService: jobPostService,
	}
}

func (h *JobPostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/job-posts")
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:jobPostId", h.Get)
		posts.PUT("/:jobPostId", h.Update)
		posts.DELETE("/:jobPostId", h.Delete)
	}

	rg.GET("/employers/:employerId/job-posts", h.ListByEmployer)
}

// Create godoc
// @Summary Create a job post
// @Tags job-posts
// @Accept json
// @Produce json
// @Param request body dto.CreateJobPostRequest true "Job post data"
// @Success 201 {object} dto.JobPostResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /job-posts [post]
func (h *JobPostHandler) Create(c *gin.Context) {
	var req dto.CreateJobPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.jobPostService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary List all job posts, newest first
// @Tags job-posts
// @Produce json
// @Success 200 {array} dto.JobPostResponse
// @Router /job-posts [get]
func (h *JobPostHandler) List(c *gin.Context) {
	posts, err := h.jobPostService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a single job post
// @Description Returns JSON null when no post has the given id.
// @Tags job-posts
// @Produce json
// @Param jobPostId path string true "Job post id"
// @Success 200 {object} dto.JobPostResponse
// @Router /job-posts/{jobPostId} [get]
func (h *JobPostHandler) Get(c *gin.Context) {
	post, err := h.jobPostService.Get(h.GetDB(c), c.Param("jobPostId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update a job post
// @Description Partial update; omitted fields keep their values. Returns
// @Description JSON null when no post has the given id.
// @Tags job-posts
// @Accept json
// @Produce json
// @Param jobPostId path string true "Job post id"
// @Param request body dto.UpdateJobPostRequest true "Fields to change"
// @Success 200 {object} dto.JobPostResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /job-posts/{jobPostId} [put]
func (h *JobPostHandler) Update(c *gin.Context) {
	var req dto.UpdateJobPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.jobPostService.Update(h.GetDB(c), c.Param("jobPostId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a job post and its applications
// @Description Deleted is false when the post does not exist or belongs to
// @Description a different employer.
// @Tags job-posts
// @Accept json
// @Produce json
// @Param jobPostId path string true "Job post id"
// @Param request body dto.DeleteJobPostRequest true "Requesting employer"
// @Success 200 {object} dto.DeleteJobPostResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /job-posts/{jobPostId} [delete]
func (h *JobPostHandler) Delete(c *gin.Context) {
	var req dto.DeleteJobPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	deleted, err := h.jobPostService.Delete(h.GetDB(c), c.Param("jobPostId"), req.EmployerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteJobPostResponse{Deleted: deleted})
}

// ListByEmployer godoc
// @Summary List the job posts owned by an employer
// @Tags job-posts
// @Produce json
// @Param employerId path string true "Employer id"
// @Success 200 {array} dto.JobPostResponse
// @Router /employers/{employerId}/job-posts [get]
func (h *JobPostHandler) ListByEmployer(c *gin.Context) {
	posts, err := h.jobPostService.ListByEmployer(h.GetDB(c), c.Param("employerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
