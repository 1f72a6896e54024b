package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleEmployer  Role = "EMPLOYER"
	RoleJobSeeker Role = "JOB_SEEKER"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleEmployer, RoleJobSeeker:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeRemote   JobType = "Remote"
)

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "Applied"
	StatusReviewed ApplicationStatus = "Reviewed"
	StatusRejected ApplicationStatus = "Rejected"
	StatusAccepted ApplicationStatus = "Accepted"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case StatusApplied, StatusReviewed, StatusRejected, StatusAccepted:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// User represents a registered account. The password is stored only as a
// bcrypt hash and is never serialized in responses.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           Role      `json:"role" db:"role"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Job represents a job posting owned by an employer.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Company     string    `json:"company" db:"company"`
	Location    string    `json:"location" db:"location"`
	SalaryRange string    `json:"salary_range" db:"salary_range"`
	JobType     JobType   `json:"job_type" db:"job_type"`
	EmployerID  uuid.UUID `json:"employer_id" db:"employer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Application represents a seeker's application to a job. At most one
// application may exist per (job, applicant) pair.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
}

// JobSummary carries the job fields attached to a seeker's application listing.
type JobSummary struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	JobType     JobType `json:"job_type"`
	SalaryRange string  `json:"salary_range"`
}

// ApplicantSummary carries the applicant fields attached to an employer's
// per-job application listing.
type ApplicantSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicationWithJob is an application enriched with its job's summary.
type ApplicationWithJob struct {
	Application
	Job JobSummary `json:"job"`
}

// ApplicationWithApplicant is an application enriched with its applicant's summary.
type ApplicationWithApplicant struct {
	Application
	Applicant ApplicantSummary `json:"applicant"`
}

// JobPage is one page of job listings plus pagination totals.
type JobPage struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ApplicationStats aggregates application counts per status for one scope
// (an employer's jobs or a seeker's own applications).
type ApplicationStats struct {
	Total    int `json:"total"`
	Applied  int `json:"applied"`
	Reviewed int `json:"reviewed"`
	Rejected int `json:"rejected"`
	Accepted int `json:"accepted"`
}
