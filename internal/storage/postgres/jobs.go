package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = "id, title, description, company, location, salary_range, job_type, employer_id, created_at"

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, description, company, location, salary_range, job_type, employer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.Title,
		req.Description,
		req.Company,
		req.Location,
		req.SalaryRange,
		req.JobType,
		req.EmployerID,
	)
	if err != nil {
		log.Printf("Error creating job for employer %s: %v", req.EmployerID, err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning created job for employer %s: %v", req.EmployerID, err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return &job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying job by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// List retrieves a page of jobs matching the public listing filters, newest
// first, along with the total match count.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int, error) {
	conditions := []string{}
	args := []interface{}{}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d)", n, n, n))
	}
	if req.Location != "" {
		args = append(args, "%"+req.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if req.JobType != nil {
		args = append(args, *req.JobType)
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM jobs" + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("Error counting jobs: %v", err)
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	args = append(args, req.Limit)
	limitArg := len(args)
	args = append(args, (req.Page-1)*req.Limit)
	offsetArg := len(args)

	query := fmt.Sprintf(
		"SELECT %s FROM jobs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		jobColumns, whereClause, limitArg, offsetArg,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying jobs: %v", err)
		return nil, 0, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs: %v", err)
		return nil, 0, fmt.Errorf("failed to scan jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, total, nil
}

// ListByEmployer retrieves all jobs posted by a specific employer, newest first.
func (r *JobRepo) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		log.Printf("Error querying jobs by employer %s: %v", employerID, err)
		return nil, fmt.Errorf("failed to query jobs by employer: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs by employer %s: %v", employerID, err)
		return nil, fmt.Errorf("failed to scan jobs by employer: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// Update replaces the mutable fields of a job posting.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, company = $4, location = $5, salary_range = $6, job_type = $7
		WHERE id = $1
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		req.ID,
		req.Title,
		req.Description,
		req.Company,
		req.Location,
		req.SalaryRange,
		req.JobType,
	)
	if err != nil {
		log.Printf("Error updating job %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning updated job %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &job, nil
}

// Delete removes a job row. Its applications must already be gone.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v", id, err)
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByEmployer removes all jobs owned by an employer and reports how many
// rows went away. Zero is not an error.
func (r *JobRepo) DeleteByEmployer(ctx context.Context, employerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE employer_id = $1`, employerID)
	if err != nil {
		log.Printf("Error deleting jobs for employer %s: %v", employerID, err)
		return 0, fmt.Errorf("failed to delete jobs by employer: %w", err)
	}
	return tag.RowsAffected(), nil
}
