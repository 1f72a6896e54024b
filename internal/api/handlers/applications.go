package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// SubmitApplication godoc
// @Summary      Apply to a job
// @Description  Records a seeker's application. A seeker may apply to a given job at most once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body dto.SubmitApplicationRequest true "Job ID and optional cover letter"
// @Success      201 {object}  dto.ApplicationResponse "Application submitted"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Seeker role required"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      409 {object}  map[string]interface{} "Conflict - Already applied"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	applicantID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ApplicantID = applicantID
	req.CallerRole = callerRole

	app, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}

	respondOK(c, http.StatusCreated, "Application submitted successfully", MapApplicationModelToResponse(app))
}

// ListMyApplications godoc
// @Summary      List the authenticated seeker's applications
// @Description  Retrieves every application submitted by the caller, newest first, each with a job summary.
// @Tags         applications
// @Produce      json
// @Success      200 {array}   dto.ApplicationWithJobResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Seeker role required"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	applicantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	apps, err := h.service.ListMine(c.Request.Context(), applicantID)
	if err != nil {
		respondError(c, err, "Failed to retrieve applications")
		return
	}

	appResponses := make([]dto.ApplicationWithJobResponse, 0, len(apps))
	for i := range apps {
		appResponses = append(appResponses, MapApplicationWithJobToResponse(&apps[i]))
	}

	respondOK(c, http.StatusOK, "Applications retrieved successfully", appResponses)
}

// ListJobApplications godoc
// @Summary      List applications to one of the caller's jobs
// @Description  Retrieves every application to the given job, newest first, each with applicant details. Only the owning employer may list.
// @Tags         applications
// @Produce      json
// @Param        jobId path string true "Job ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationWithApplicantResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		respondError(c, services.ErrNotFound, "")
		return
	}

	apps, err := h.service.ListForJob(c.Request.Context(), jobID, employerID, callerRole)
	if err != nil {
		respondError(c, err, "Failed to retrieve job applications")
		return
	}

	appResponses := make([]dto.ApplicationWithApplicantResponse, 0, len(apps))
	for i := range apps {
		appResponses = append(appResponses, MapApplicationWithApplicantToResponse(&apps[i]))
	}

	respondOK(c, http.StatusOK, "Job applications retrieved successfully", appResponses)
}

// UpdateApplicationStatus godoc
// @Summary      Update an application's status
// @Description  Sets any of the four statuses. Only the employer owning the application's job may update.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path string true "Application ID" Format(uuid)
// @Param        status body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object}  dto.ApplicationResponse "Status updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid status"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]interface{} "Application Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	employerID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound, "")
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = appID
	req.EmployerID = employerID
	req.CallerRole = callerRole

	updated, err := h.service.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update application status")
		return
	}

	respondOK(c, http.StatusOK, "Application status updated successfully", MapApplicationModelToResponse(updated))
}

// GetStats godoc
// @Summary      Get application statistics
// @Description  Aggregates counts per status, scoped to the caller's role: applications to an employer's jobs, or a seeker's own applications.
// @Tags         applications
// @Produce      json
// @Success      200 {object}  dto.ApplicationStatsResponse "Aggregated counts"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /applications/stats [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetStats(c *gin.Context) {
	userID, ok := callerIdentity(c)
	if !ok {
		return
	}
	callerRole, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID, callerRole)
	if err != nil {
		respondError(c, err, "Failed to retrieve application stats")
		return
	}

	respondOK(c, http.StatusOK, "Application stats retrieved successfully", MapStatsToResponse(stats))
}
