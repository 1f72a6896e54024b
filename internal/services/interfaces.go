package services

import (
	"context"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account and credential business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *auth.TokenPair, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *auth.TokenPair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	UpdateEmail(ctx context.Context, req *dto.UpdateEmailRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) (*models.JobPage, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id, employerID uuid.UUID, callerRole models.Role) error
}

// ApplicationService defines the interface for job application business logic.
type ApplicationService interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error)
	ListMine(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationWithJob, error)
	ListForJob(ctx context.Context, jobID, employerID uuid.UUID, callerRole models.Role) ([]models.ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	Stats(ctx context.Context, userID uuid.UUID, role models.Role) (*models.ApplicationStats, error)
}
