package services

import (
	"context"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
	db      *pgxpool.Pool // For the job-deletion cascade transaction
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, db *pgxpool.Pool) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo, db: db}
}

// Create stores a new posting owned by the calling employer.
func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := Authorize(req.EmployerID, req.CallerRole, req.EmployerID, models.RoleEmployer); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

// List returns one page of postings matching the filters plus pagination
// totals. Out-of-range pages come back empty rather than failing.
func (s *jobService) List(ctx context.Context, req *dto.ListJobsRequest) (*models.JobPage, error) {
	if req.Page < 1 {
		req.Page = defaultPage
	}
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}

	jobs, total, err := s.jobRepo.List(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}

	return &models.JobPage{
		Jobs:  jobs,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
		Pages: (total + req.Limit - 1) / req.Limit,
	}, nil
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		log.Printf("JobService: Error listing employer jobs for %s: %v", employerID, err)
		return nil, fmt.Errorf("internal error listing employer jobs: %w", err)
	}
	return jobs, nil
}

// Update replaces the mutable fields of a posting owned by the caller.
func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}

	if err := Authorize(req.EmployerID, req.CallerRole, existing.EmployerID, models.RoleEmployer); err != nil {
		log.Printf("Update: Forbidden attempt on job %s by user %s", req.ID, req.EmployerID)
		return nil, err
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}
	return updated, nil
}

// Delete removes a posting owned by the caller. The job's applications are
// deleted first, then the job, inside one transaction.
func (s *jobService) Delete(ctx context.Context, id, employerID uuid.UUID, callerRole models.Role) error {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "fetching job for deletion")
	}

	if err := Authorize(employerID, callerRole, existing.EmployerID, models.RoleEmployer); err != nil {
		log.Printf("Delete: Forbidden attempt on job %s by user %s", id, employerID)
		return err
	}

	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Delete: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txAppRepo := s.appRepo.WithTx(tx)
	txJobRepo := s.jobRepo.WithTx(tx)

	deleted, err := txAppRepo.DeleteByJob(ctx, id)
	if err != nil {
		return mapRepoError(err, "deleting applications for job")
	}
	if err := txJobRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting job")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Delete: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing job deletion: %w", err)
	}
	// --- End Transaction ---

	log.Printf("Job %s deleted along with %d applications", id, deleted)
	return nil
}
