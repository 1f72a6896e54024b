package handlers

import (
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// callerIdentity pulls the authenticated ID and role from the request context.
func callerIdentity(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// ListJobs godoc
// @Summary      List job postings
// @Description  Public listing with keyword, location and job type filters plus pagination. Out-of-range pages come back empty.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Keyword matched against title, description and company"
// @Param        location query string false "Location substring filter"
// @Param        jobType query string false "Exact job type filter" Enums(Full-time, Part-time, Remote)
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.JobListResponse "One page of postings"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve jobs")
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(page.Jobs))
	for i := range page.Jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(&page.Jobs[i]))
	}

	respondOK(c, http.StatusOK, "Jobs retrieved successfully", dto.JobListResponse{
		Jobs:  jobResponses,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	})
}

// GetJob godoc
// @Summary      Get a job by ID
// @Description  Retrieves one posting. A malformed ID is indistinguishable from an absent one.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		respondError(c, services.ErrNotFound, "")
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err, "Failed to retrieve job")
		return
	}

	respondOK(c, http.StatusOK, "Job retrieved successfully", MapJobModelToJobResponse(job))
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Adds a posting owned by the authenticated employer. Employer ID is taken from auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Employer role required"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.EmployerID = employerID
	req.CallerRole = callerRole

	createdJob, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}

	respondOK(c, http.StatusCreated, "Job created successfully", MapJobModelToJobResponse(createdJob))
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Full replacement of the mutable fields. Only the owning employer may update.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true "Replacement job details"
// @Success      200 {object}  dto.JobResponse "Job updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		respondError(c, services.ErrNotFound, "")
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = jobID
	req.EmployerID = employerID
	req.CallerRole = callerRole

	updatedJob, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update job")
		return
	}

	respondOK(c, http.StatusOK, "Job updated successfully", MapJobModelToJobResponse(updatedJob))
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Removes the posting and all applications to it. Only the owning employer may delete.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  map[string]interface{} "Job deleted successfully"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		respondError(c, services.ErrNotFound, "")
		return
	}

	if err := h.service.Delete(c.Request.Context(), jobID, employerID, callerRole); err != nil {
		respondError(c, err, "Failed to delete job")
		return
	}

	respondMessage(c, http.StatusOK, "Job deleted successfully")
}

// ListMyJobs godoc
// @Summary      List the authenticated employer's postings
// @Description  Retrieves every posting owned by the caller, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200 {array}   dto.JobResponse "Successfully retrieved postings"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Employer role required"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /jobs/employer/my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	jobs, err := h.service.ListByEmployer(c.Request.Context(), employerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve employer jobs")
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(&jobs[i]))
	}

	respondOK(c, http.StatusOK, "Employer jobs retrieved successfully", jobResponses)
}
