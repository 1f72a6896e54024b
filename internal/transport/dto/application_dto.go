package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Application Request DTOs ---

// SubmitApplicationRequest defines the structure for applying to a job.
type SubmitApplicationRequest struct {
	JobID       uuid.UUID   `json:"jobId" validate:"required"`
	CoverLetter *string     `json:"coverLetter" validate:"omitempty,max=2000"`
	ApplicantID uuid.UUID   `json:"-"` // Set by handler from auth context
	CallerRole  models.Role `json:"-"` // Set by handler from auth context
}

// CreateApplicationRequest is the storage-level shape for inserting an application.
type CreateApplicationRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	CoverLetter *string
}

// UpdateApplicationStatusRequest sets a new status on an application.
type UpdateApplicationStatusRequest struct {
	ID         uuid.UUID                `json:"-"` // From URL path
	Status     models.ApplicationStatus `json:"status" validate:"required,oneof=Applied Reviewed Rejected Accepted"`
	EmployerID uuid.UUID                `json:"-"` // Set by handler from auth context
	CallerRole models.Role              `json:"-"` // Set by handler from auth context
}

// --- Application Response DTOs ---

// ApplicationResponse defines the standard application data returned to the client.
type ApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	JobID       uuid.UUID                `json:"jobId"`
	ApplicantID uuid.UUID                `json:"applicantId"`
	Status      models.ApplicationStatus `json:"status"`
	CoverLetter *string                  `json:"coverLetter,omitempty"`
	AppliedAt   time.Time                `json:"appliedAt"`
}

// JobSummaryResponse is the job snippet attached to a seeker's application listing.
type JobSummaryResponse struct {
	Title       string         `json:"title"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	JobType     models.JobType `json:"jobType"`
	SalaryRange string         `json:"salaryRange"`
}

// ApplicantSummaryResponse is the applicant snippet attached to an employer's listing.
type ApplicantSummaryResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicationWithJobResponse enriches an application with its job summary.
type ApplicationWithJobResponse struct {
	ApplicationResponse
	Job JobSummaryResponse `json:"job"`
}

// ApplicationWithApplicantResponse enriches an application with its applicant summary.
type ApplicationWithApplicantResponse struct {
	ApplicationResponse
	Applicant ApplicantSummaryResponse `json:"applicant"`
}

// ApplicationStatsResponse aggregates counts per status. Always fully
// populated; zeroes when nothing matches.
type ApplicationStatsResponse struct {
	Total    int `json:"total"`
	Applied  int `json:"applied"`
	Reviewed int `json:"reviewed"`
	Rejected int `json:"rejected"`
	Accepted int `json:"accepted"`
}
