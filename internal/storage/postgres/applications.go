package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = "id, job_id, applicant_id, status, cover_letter, applied_at"

// ApplicationRepo implements the storage.ApplicationRepository interface using
// PostgreSQL. The composite unique index on (job_id, applicant_id) is the
// authority on duplicates; a racing insert loses with ErrDuplicateApplication.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.ApplicantID,
		&a.Status,
		&a.CoverLetter,
		&a.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with status Applied.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, status, cover_letter, applied_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.JobID, req.ApplicantID, models.StatusApplied, req.CoverLetter)
	app, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err, constraintJobApplicant) {
			log.Printf("Duplicate application for job %s by applicant %s", req.JobID, req.ApplicantID)
			return nil, storage.ErrDuplicateApplication
		}
		log.Printf("Error creating application for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

// GetByJobAndApplicant retrieves the application for a (job, applicant) pair,
// if one exists.
func (r *ApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND applicant_id = $2`

	app, err := scanApplication(r.db.QueryRow(ctx, query, jobID, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application for job %s / applicant %s: %v", jobID, applicantID, err)
		return nil, fmt.Errorf("failed to get application by job and applicant: %w", err)
	}
	return app, nil
}

// ListByApplicant retrieves all applications submitted by a seeker, newest
// first, each enriched with its job's summary fields.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.applied_at,
		       j.title, j.company, j.location, j.job_type, j.salary_range
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		log.Printf("Error querying applications by applicant %s: %v", applicantID, err)
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationWithJob{}
	for rows.Next() {
		var a models.ApplicationWithJob
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CoverLetter, &a.AppliedAt,
			&a.Job.Title, &a.Job.Company, &a.Job.Location, &a.Job.JobType, &a.Job.SalaryRange,
		)
		if err != nil {
			log.Printf("Error scanning application row for applicant %s: %v", applicantID, err)
			return nil, fmt.Errorf("failed to scan applications by applicant: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by applicant: %w", err)
	}

	return apps, nil
}

// ListByJob retrieves all applications for a job, newest first, each enriched
// with the applicant's name and email.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithApplicant, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.applied_at,
		       u.name, u.email
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications by job %s: %v", jobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationWithApplicant{}
	for rows.Next() {
		var a models.ApplicationWithApplicant
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CoverLetter, &a.AppliedAt,
			&a.Applicant.Name, &a.Applicant.Email,
		)
		if err != nil {
			log.Printf("Error scanning application row for job %s: %v", jobID, err)
			return nil, fmt.Errorf("failed to scan applications by job: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by job: %w", err)
	}

	return apps, nil
}

// UpdateStatus sets the status of an application.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1 RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status of application %s: %v", id, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

// ListStatusesByApplicant returns the statuses of all applications submitted
// by a seeker, for aggregation.
func (r *ApplicationRepo) ListStatusesByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationStatus, error) {
	query := `SELECT status FROM applications WHERE applicant_id = $1`
	return r.listStatuses(ctx, query, applicantID)
}

// ListStatusesByEmployer returns the statuses of all applications to jobs
// owned by an employer, for aggregation.
func (r *ApplicationRepo) ListStatusesByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.ApplicationStatus, error) {
	query := `
		SELECT a.status
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.employer_id = $1
	`
	return r.listStatuses(ctx, query, employerID)
}

func (r *ApplicationRepo) listStatuses(ctx context.Context, query string, scopeID uuid.UUID) ([]models.ApplicationStatus, error) {
	rows, err := r.db.Query(ctx, query, scopeID)
	if err != nil {
		log.Printf("Error querying application statuses for %s: %v", scopeID, err)
		return nil, fmt.Errorf("failed to query application statuses: %w", err)
	}
	defer rows.Close()

	statuses := []models.ApplicationStatus{}
	for rows.Next() {
		var s models.ApplicationStatus
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan application status: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application statuses: %w", err)
	}
	return statuses, nil
}

// DeleteByJob removes all applications for a job. Zero rows is not an error.
func (r *ApplicationRepo) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID)
	if err != nil {
		log.Printf("Error deleting applications for job %s: %v", jobID, err)
		return 0, fmt.Errorf("failed to delete applications by job: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByApplicant removes all applications submitted by a user.
func (r *ApplicationRepo) DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE applicant_id = $1`, applicantID)
	if err != nil {
		log.Printf("Error deleting applications for applicant %s: %v", applicantID, err)
		return 0, fmt.Errorf("failed to delete applications by applicant: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEmployerJobs removes all applications referencing any job owned by
// the employer. Needed before the jobs themselves can be deleted.
func (r *ApplicationRepo) DeleteByEmployerJobs(ctx context.Context, employerID uuid.UUID) (int64, error) {
	query := `DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE employer_id = $1)`
	tag, err := r.db.Exec(ctx, query, employerID)
	if err != nil {
		log.Printf("Error deleting applications for employer %s's jobs: %v", employerID, err)
		return 0, fmt.Errorf("failed to delete applications by employer jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
