package postgres

import (
	"context"
	"fmt"
	"log"
)

// schema holds the DDL applied at startup. Statements are idempotent so the
// server can run against an already-initialized database. The unique indexes
// on users.email and applications(job_id, applicant_id) are what make the
// uniqueness invariants hold under concurrent inserts.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('EMPLOYER', 'JOB_SEEKER')),
	phone TEXT,
	bio TEXT,
	profile_picture TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);

CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL,
	salary_range TEXT NOT NULL,
	job_type TEXT NOT NULL CHECK (job_type IN ('Full-time', 'Part-time', 'Remote')),
	employer_id UUID NOT NULL REFERENCES users (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS jobs_employer_id_idx ON jobs (employer_id);
CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at DESC);

CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES jobs (id),
	applicant_id UUID NOT NULL REFERENCES users (id),
	status TEXT NOT NULL DEFAULT 'Applied' CHECK (status IN ('Applied', 'Reviewed', 'Rejected', 'Accepted')),
	cover_letter TEXT,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS applications_job_applicant_key ON applications (job_id, applicant_id);
CREATE INDEX IF NOT EXISTS applications_applicant_id_idx ON applications (applicant_id);
`

// Named constraints the repositories match on when remapping 23505 errors.
const (
	constraintUsersEmail    = "users_email_key"
	constraintJobApplicant  = "applications_job_applicant_key"
)

// Migrate applies the embedded schema.
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Database schema is up to date")
	return nil
}
