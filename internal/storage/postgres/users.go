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
	"golang.org/x/crypto/bcrypt"
)

const userColumns = "id, name, email, password_hash, role, phone, bio, profile_picture, created_at"

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.Bio,
		&u.ProfilePicture,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persists a new user. The password is bcrypt-hashed here so plaintext
// never leaves this function. A duplicate email surfaces as ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Name, req.Email, string(hashedPassword), req.Role)
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err, constraintUsersEmail) {
			log.Printf("Attempted to create user with duplicate email %s", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash
// for credential verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateEmail replaces the user's email. A duplicate target email surfaces as
// ErrDuplicateEmail.
func (r *UserRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*models.User, error) {
	query := `UPDATE users SET email = $2 WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		if isUniqueViolation(err, constraintUsersEmail) {
			log.Printf("Attempted to update user %s to duplicate email %s", id, email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error updating email for user %s: %v", id, err)
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the optional profile fields that are present.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	setClauses := []string{}
	args := []interface{}{req.ID}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Phone != nil {
		args = append(args, *req.Phone)
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", len(args)))
	}
	if req.Bio != nil {
		args = append(args, *req.Bio)
		setClauses = append(setClauses, fmt.Sprintf("bio = $%d", len(args)))
	}
	if req.ProfilePicture != nil {
		args = append(args, *req.ProfilePicture)
		setClauses = append(setClauses, fmt.Sprintf("profile_picture = $%d", len(args)))
	}

	if len(setClauses) == 0 {
		// Nothing to change; return the current row.
		return r.GetByID(ctx, req.ID)
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $1 RETURNING %s",
		strings.Join(setClauses, ", "), userColumns,
	)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating profile for user %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// UpdatePassword stores a fresh bcrypt hash of the new password.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing new password for user %s: %v", id, err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, string(hashedPassword))
	if err != nil {
		log.Printf("Error updating password for user %s: %v", id, err)
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a user row. Owned jobs and applications must already be gone.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
