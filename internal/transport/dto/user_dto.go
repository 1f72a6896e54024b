package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for creating a new account.
type RegisterRequest struct {
	Name     string      `json:"name" validate:"required,max=50"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=EMPLOYER JOB_SEEKER"`
}

// LoginRequest defines the structure for authenticating with email/password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdateEmailRequest changes the account email after re-verifying the password.
type UpdateEmailRequest struct {
	ID       uuid.UUID `json:"-"` // Set by handler from auth context
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required"`
}

// UpdateProfileRequest updates optional profile fields. All fields are
// optional; absent fields are left untouched.
type UpdateProfileRequest struct {
	ID             uuid.UUID `json:"-"` // Set by handler from auth context
	Name           *string   `json:"name" validate:"omitempty,max=50"`
	Phone          *string   `json:"phone" validate:"omitempty,max=15"`
	Bio            *string   `json:"bio" validate:"omitempty,max=500"`
	ProfilePicture *string   `json:"profilePicture"`
}

// ChangePasswordRequest replaces the password after re-verifying the current one.
type ChangePasswordRequest struct {
	ID              uuid.UUID `json:"-"` // Set by handler from auth context
	CurrentPassword string    `json:"currentPassword" validate:"required"`
	NewPassword     string    `json:"newPassword" validate:"required,min=6"`
}

// DeleteAccountRequest removes the account and everything it owns.
type DeleteAccountRequest struct {
	ID       uuid.UUID `json:"-"` // Set by handler from auth context
	Password string    `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. Never includes the password hash.
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	Phone          *string     `json:"phone,omitempty"`
	Bio            *string     `json:"bio,omitempty"`
	ProfilePicture *string     `json:"profilePicture,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// TokenPairResponse carries a freshly issued access/refresh pair.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User   UserResponse      `json:"user"`
	Tokens TokenPairResponse `json:"tokens"`
}
