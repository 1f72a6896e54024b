package handlers

import (
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds dependencies for account and session operations.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an account with one of the two roles and returns the user plus an initial token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Account details"
// @Success      201 {object}  dto.AuthResponse "Account created"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]interface{} "Conflict - Email already registered"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, tokens, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register account")
		return
	}

	respondOK(c, http.StatusCreated, "Account registered successfully", dto.AuthResponse{
		User: MapUserModelToUserResponse(user),
		Tokens: dto.TokenPairResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		},
	})
}

// Login godoc
// @Summary      Authenticate with email and password
// @Description  Verifies credentials and returns the user plus a fresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Login credentials"
// @Success      200 {object}  dto.AuthResponse "Authenticated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized - Invalid credentials"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	respondOK(c, http.StatusOK, "Logged in successfully", dto.AuthResponse{
		User: MapUserModelToUserResponse(user),
		Tokens: dto.TokenPairResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		},
	})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new token pair
// @Description  Validates the refresh token and issues a brand-new access/refresh pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      200 {object}  dto.TokenPairResponse "New token pair"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized - Invalid or expired refresh token"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err, "Failed to refresh tokens")
		return
	}

	respondOK(c, http.StatusOK, "Tokens refreshed successfully", dto.TokenPairResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Stateless logout. Tokens are not revoked server side; clients discard them.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  map[string]interface{} "Logged out"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	respondMessage(c, http.StatusOK, "Logged out successfully")
}

// GetMe godoc
// @Summary      Get the authenticated user's profile
// @Description  Returns the account and profile details of the caller.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  dto.UserResponse "Profile"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "User Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("GetMe: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	respondOK(c, http.StatusOK, "Profile retrieved successfully", MapUserModelToUserResponse(user))
}

// UpdateEmail godoc
// @Summary      Change the account email
// @Description  Updates the email after re-verifying the current password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        update body dto.UpdateEmailRequest true "New email and current password"
// @Success      200 {object}  dto.UserResponse "Email updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized - Wrong password"
// @Failure      409 {object}  map[string]interface{} "Conflict - Email already registered"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/update-email [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateEmail(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = userID

	user, err := h.service.UpdateEmail(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update email")
		return
	}

	respondOK(c, http.StatusOK, "Email updated successfully", MapUserModelToUserResponse(user))
}

// UpdateProfile godoc
// @Summary      Update profile fields
// @Description  Updates any of the optional profile fields. Absent fields are left untouched.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success      200 {object}  dto.UserResponse "Profile updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/update-profile [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = userID

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	respondOK(c, http.StatusOK, "Profile updated successfully", MapUserModelToUserResponse(user))
}

// ChangePassword godoc
// @Summary      Change the account password
// @Description  Replaces the password after re-verifying the current one.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success      200 {object}  map[string]interface{} "Password changed"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized - Wrong current password"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/change-password [put]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = userID

	if err := h.service.ChangePassword(c.Request.Context(), &req); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	respondMessage(c, http.StatusOK, "Password changed successfully")
}

// DeleteAccount godoc
// @Summary      Delete the account
// @Description  Removes the account and everything it owns after re-verifying the password. Existing tokens become useless once the account is gone.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        confirmation body dto.DeleteAccountRequest true "Current password"
// @Success      200 {object}  map[string]interface{} "Account deleted"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized - Wrong password"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/delete-account [delete]
// @Security     BearerAuth
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.ID = userID

	if err := h.service.DeleteAccount(c.Request.Context(), &req); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}

	respondMessage(c, http.StatusOK, "Account deleted successfully")
}
