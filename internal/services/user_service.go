package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo storage.UserRepository
	jobRepo  storage.JobRepository
	appRepo  storage.ApplicationRepository
	issuer   *auth.TokenIssuer
	db       *pgxpool.Pool // For the account-deletion cascade transaction
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	userRepo storage.UserRepository,
	jobRepo storage.JobRepository,
	appRepo storage.ApplicationRepository,
	issuer *auth.TokenIssuer,
	db *pgxpool.Pool,
) UserService {
	return &userService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		issuer:   issuer,
		db:       db,
	}
}

// Register creates a new account and issues an initial token pair.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *auth.TokenPair, error) {
	user, err := s.userRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, nil, fmt.Errorf("internal error creating user: %w", err)
	}

	tokens, err := s.issuer.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		log.Printf("UserService: Error issuing tokens for user %s: %v", user.Email, err)
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, tokens, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *auth.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issuer.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		log.Printf("Error issuing tokens for user %s: %v", user.Email, err)
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, tokens, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

// Refresh exchanges a valid refresh token for a brand-new access/refresh pair.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokens, err := s.issuer.Issue(claims.UserID, claims.Role, claims.Email)
	if err != nil {
		log.Printf("Error reissuing tokens for user %s: %v", claims.UserID, err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return tokens, nil
}

// UpdateEmail changes the account email after re-verifying the password.
func (s *userService) UpdateEmail(ctx context.Context, req *dto.UpdateEmailRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching user for email update")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	updated, err := s.userRepo.UpdateEmail(ctx, req.ID, req.Email)
	if err != nil {
		return nil, mapRepoError(err, "updating email")
	}
	return updated, nil
}

// UpdateProfile updates optional profile fields. It trusts the authenticated
// session and does not re-verify the password.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating profile")
	}
	return user, nil
}

// ChangePassword replaces the password after re-verifying the current one.
func (s *userService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, "fetching user for password change")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.userRepo.UpdatePassword(ctx, req.ID, req.NewPassword); err != nil {
		return mapRepoError(err, "updating password")
	}
	return nil
}

// DeleteAccount re-verifies the password, then removes everything the user
// owns inside one transaction: applications to their jobs, their own
// applications, their jobs, and finally the user row. Children go before the
// parent so a dangling owner reference can never persist.
func (s *userService) DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, "fetching user for account deletion")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials
	}

	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("DeleteAccount: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txUserRepo := s.userRepo.WithTx(tx)
	txJobRepo := s.jobRepo.WithTx(tx)
	txAppRepo := s.appRepo.WithTx(tx)

	if _, err := txAppRepo.DeleteByEmployerJobs(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting applications to owned jobs")
	}
	if _, err := txAppRepo.DeleteByApplicant(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting submitted applications")
	}
	if _, err := txJobRepo.DeleteByEmployer(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting owned jobs")
	}
	if err := txUserRepo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting user record")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("DeleteAccount: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing account deletion: %w", err)
	}
	// --- End Transaction ---

	log.Printf("Account %s deleted with all owned jobs and applications", req.ID)
	return nil
}
