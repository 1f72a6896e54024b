package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter() (*gin.Engine, *MockUserService, *auth.TokenIssuer) {
	mockService := new(MockUserService)
	issuer := testIssuer()
	handler := handlers.NewAuthHandler(mockService, validator.New())

	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterAuthRoutes(api, handler, middleware.JWTAuthMiddleware(issuer))
	return router, mockService, issuer
}

func performRequest(router *gin.Engine, method, path string, body []byte, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandler_Register_Success(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	userID := uuid.New()
	mockService.On("Register", mock.Anything, mock.MatchedBy(func(r *dto.RegisterRequest) bool {
		return r.Email == "new@example.com" && r.Role == models.RoleJobSeeker
	})).Return(
		&models.User{ID: userID, Name: "New User", Email: "new@example.com", Role: models.RoleJobSeeker, CreatedAt: time.Now()},
		&auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		nil,
	).Once()

	body, _ := json.Marshal(gin.H{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "password123",
		"role":     "JOB_SEEKER",
	})
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", body, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])
	tokens := data["tokens"].(map[string]interface{})
	assert.Equal(t, "access", tokens["accessToken"])
	mockService.AssertExpectations(t)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	// Short password and an invalid role.
	body, _ := json.Marshal(gin.H{
		"name":     "Bad User",
		"email":    "bad@example.com",
		"password": "123",
		"role":     "ADMIN",
	})
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	assert.NotEmpty(t, envelope["errors"])
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	mockService.On("Register", mock.Anything, mock.Anything).Return(nil, nil, services.ErrDuplicateEmail).Once()

	body, _ := json.Marshal(gin.H{
		"name":     "Dup User",
		"email":    "dup@example.com",
		"password": "password123",
		"role":     "EMPLOYER",
	})
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", body, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	mockService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	mockService.On("Login", mock.Anything, mock.Anything).Return(nil, nil, services.ErrInvalidCredentials).Once()

	body, _ := json.Marshal(gin.H{"email": "who@example.com", "password": "wrong"})
	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	mockService.AssertExpectations(t)
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	mockService.On("Refresh", mock.Anything, "stale-token").Return(nil, services.ErrInvalidToken).Once()

	body, _ := json.Marshal(gin.H{"refreshToken": "stale-token"})
	w := performRequest(router, http.MethodPost, "/api/v1/auth/refresh", body, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertExpectations(t)
}

func TestAuthHandler_GetMe(t *testing.T) {
	router, mockService, issuer := setupAuthRouter()

	userID := uuid.New()
	mockService.On("GetByID", mock.Anything, userID).Return(
		&models.User{ID: userID, Name: "Current User", Email: "me@example.com", Role: models.RoleEmployer},
		nil,
	).Once()

	token := bearerToken(issuer, userID, models.RoleEmployer, "me@example.com")
	w := performRequest(router, http.MethodGet, "/api/v1/auth/me", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "me@example.com", data["email"])
	mockService.AssertExpectations(t)
}

func TestAuthHandler_GetMe_NoToken(t *testing.T) {
	router, mockService, _ := setupAuthRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/auth/me", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout(t *testing.T) {
	router, _, issuer := setupAuthRouter()

	token := bearerToken(issuer, uuid.New(), models.RoleJobSeeker, "out@example.com")
	w := performRequest(router, http.MethodPost, "/api/v1/auth/logout", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
}
