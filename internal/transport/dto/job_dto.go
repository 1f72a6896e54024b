package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title       string         `json:"title" validate:"required,max=100"`
	Description string         `json:"description" validate:"required"`
	Company     string         `json:"company" validate:"required,max=100"`
	Location    string         `json:"location" validate:"required"`
	SalaryRange string         `json:"salaryRange" validate:"required"`
	JobType     models.JobType `json:"jobType" validate:"required,oneof=Full-time Part-time Remote"`
	EmployerID  uuid.UUID      `json:"-"` // Set by handler from auth context
	CallerRole  models.Role    `json:"-"` // Set by handler from auth context
}

// UpdateJobRequest replaces the mutable fields of an existing posting.
// The same field requirements as creation apply.
type UpdateJobRequest struct {
	ID          uuid.UUID      `json:"-"` // From URL path
	Title       string         `json:"title" validate:"required,max=100"`
	Description string         `json:"description" validate:"required"`
	Company     string         `json:"company" validate:"required,max=100"`
	Location    string         `json:"location" validate:"required"`
	SalaryRange string         `json:"salaryRange" validate:"required"`
	JobType     models.JobType `json:"jobType" validate:"required,oneof=Full-time Part-time Remote"`
	EmployerID  uuid.UUID      `json:"-"` // Set by handler from auth context
	CallerRole  models.Role    `json:"-"` // Set by handler from auth context
}

// ListJobsRequest defines the public listing filters. Non-positive page or
// limit values fall back to the defaults instead of erroring.
type ListJobsRequest struct {
	Search   string          `form:"search"`
	Location string          `form:"location"`
	JobType  *models.JobType `form:"jobType" validate:"omitempty,oneof=Full-time Part-time Remote"`
	Page     int             `form:"page,default=1"`
	Limit    int             `form:"limit,default=10"`
}

// --- Job Response DTOs ---

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	SalaryRange string         `json:"salaryRange"`
	JobType     models.JobType `json:"jobType"`
	EmployerID  uuid.UUID      `json:"employerId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// JobListResponse is one page of postings plus pagination totals.
type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Pages int           `json:"pages"`
}
