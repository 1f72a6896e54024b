package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations. Password
// hashing happens inside Create/UpdatePassword so plaintext never reaches disk.
type UserRepository interface {
	Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx pgx.Tx) UserRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEmployer(ctx context.Context, employerID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for application data operations.
// Create relies on the composite (job_id, applicant_id) unique index to reject
// a racing duplicate insert.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationWithJob, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	ListStatusesByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationStatus, error)
	ListStatusesByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.ApplicationStatus, error)
	DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error)
	DeleteByEmployerJobs(ctx context.Context, employerID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}
