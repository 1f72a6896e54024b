package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo}
}

// Submit records a seeker's application to a job. Duplicates are rejected
// twice: by a pre-read here, and by the storage layer's composite unique
// index for the concurrent case. Both paths surface ErrDuplicateApplication.
func (s *applicationService) Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if req.CallerRole == models.RoleEmployer {
		return nil, fmt.Errorf("%w: employers cannot apply to jobs", ErrForbidden)
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, "fetching job for application")
	}

	_, err := s.appRepo.GetByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err == nil {
		log.Printf("Submit: Applicant %s already applied to job %s", req.ApplicantID, req.JobID)
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	app, err := s.appRepo.Create(ctx, &dto.CreateApplicationRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		// A concurrent submit may land here via the unique index.
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

// ListMine returns the caller's applications, newest first, enriched with job summaries.
func (s *applicationService) ListMine(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationWithJob, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for %s: %v", applicantID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

// ListForJob returns all applications to one of the caller's jobs, newest
// first, enriched with applicant details.
func (s *applicationService) ListForJob(ctx context.Context, jobID, employerID uuid.UUID, callerRole models.Role) ([]models.ApplicationWithApplicant, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for application listing")
	}

	if err := Authorize(employerID, callerRole, job.EmployerID, models.RoleEmployer); err != nil {
		log.Printf("ListForJob: Forbidden attempt on job %s by user %s", jobID, employerID)
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for job %s: %v", jobID, err)
		return nil, fmt.Errorf("internal error listing job applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus sets any of the four statuses on an application owned (via its
// job) by the calling employer. No transition graph is enforced.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching application for status update")
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for status update")
	}

	if err := Authorize(req.EmployerID, req.CallerRole, job.EmployerID, models.RoleEmployer); err != nil {
		log.Printf("UpdateStatus: Forbidden attempt on application %s by user %s", req.ID, req.EmployerID)
		return nil, err
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating application status")
	}
	return updated, nil
}

// Stats aggregates application counts per status, scoped to the caller:
// applications to an employer's jobs, or a seeker's own applications. A
// single pass tallies the statuses; an empty scope yields all zeroes.
func (s *applicationService) Stats(ctx context.Context, userID uuid.UUID, role models.Role) (*models.ApplicationStats, error) {
	var (
		statuses []models.ApplicationStatus
		err      error
	)
	if role == models.RoleEmployer {
		statuses, err = s.appRepo.ListStatusesByEmployer(ctx, userID)
	} else {
		statuses, err = s.appRepo.ListStatusesByApplicant(ctx, userID)
	}
	if err != nil {
		log.Printf("ApplicationService: Error fetching statuses for %s: %v", userID, err)
		return nil, fmt.Errorf("internal error aggregating application stats: %w", err)
	}

	stats := &models.ApplicationStats{Total: len(statuses)}
	for _, status := range statuses {
		switch status {
		case models.StatusApplied:
			stats.Applied++
		case models.StatusReviewed:
			stats.Reviewed++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusAccepted:
			stats.Accepted++
		}
	}
	return stats, nil
}
