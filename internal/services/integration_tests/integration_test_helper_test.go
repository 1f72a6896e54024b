package integration_tests

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage/postgres"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a string
func ptr(s string) *string { return &s }

var testDB *pgxpool.Pool

// getTestPool establishes a connection pool to the test database. It reads
// the DSN from the TEST_DATABASE_URL environment variable and skips the test
// when it is not set.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set; skipping integration test")
	}

	if testDB == nil {
		pool, err := pgxpool.New(context.Background(), dsn)
		require.NoError(t, err, "Failed to create test connection pool")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, pool.Ping(ctx), "Failed to ping test database")

		require.NoError(t, postgres.Migrate(ctx, pool), "Failed to migrate test schema")
		testDB = pool
	}
	return testDB
}

// cleanupTables truncates the given tables for test isolation. Applications
// reference jobs and users, so callers list children first.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err, "Failed to clean table %s", table)
	}
}

func testTokenIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(config.JWTConfig{
		AccessSecret:      "integration-access-secret",
		RefreshSecret:     "integration-refresh-secret",
		AccessExpiration:  15 * time.Minute,
		RefreshExpiration: 7 * 24 * time.Hour,
	})
}

// createTestUser inserts a user through the repository, hashing the fixed
// test password.
func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email, name string, role models.Role) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	user, err := userRepo.Create(ctx, &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// createTestJob inserts a posting owned by the given employer.
func createTestJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool, employerID uuid.UUID, title string) *models.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(pool)
	job, err := jobRepo.Create(ctx, &dto.CreateJobRequest{
		Title:       title,
		Description: "Integration test posting",
		Company:     "Test Co",
		Location:    "Porto",
		SalaryRange: "50k-70k",
		JobType:     models.JobTypeFullTime,
		EmployerID:  employerID,
		CallerRole:  models.RoleEmployer,
	})
	require.NoError(t, err, "Failed to create test job for employer %s", employerID)
	require.NotNil(t, job)
	return job
}

// createTestApplication inserts an application from the given seeker.
func createTestApplication(t *testing.T, ctx context.Context, pool *pgxpool.Pool, jobID, applicantID uuid.UUID) *models.Application {
	t.Helper()
	appRepo := postgres.NewApplicationRepo(pool)
	app, err := appRepo.Create(ctx, &dto.CreateApplicationRequest{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: ptr("Please consider me."),
	})
	require.NoError(t, err, "Failed to create test application")
	require.NotNil(t, app)
	return app
}
