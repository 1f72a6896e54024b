package handlers_test

import (
	"context"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *auth.TokenPair, error) {
	args := m.Called(ctx, req)
	var user *models.User
	var tokens *auth.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	if args.Get(1) != nil {
		tokens = args.Get(1).(*auth.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *auth.TokenPair, error) {
	args := m.Called(ctx, req)
	var user *models.User
	var tokens *auth.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	if args.Get(1) != nil {
		tokens = args.Get(1).(*auth.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockUserService) UpdateEmail(ctx context.Context, req *dto.UpdateEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.UserService = (*MockUserService)(nil)

// MockJobService is a mock type for the services.JobService interface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) List(ctx context.Context, req *dto.ListJobsRequest) (*models.JobPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPage), args.Error(1)
}

func (m *MockJobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, id, employerID uuid.UUID, callerRole models.Role) error {
	args := m.Called(ctx, id, employerID, callerRole)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListMine(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationWithJob, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithJob), args.Error(1)
}

func (m *MockApplicationService) ListForJob(ctx context.Context, jobID, employerID uuid.UUID, callerRole models.Role) ([]models.ApplicationWithApplicant, error) {
	args := m.Called(ctx, jobID, employerID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithApplicant), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) Stats(ctx context.Context, userID uuid.UUID, role models.Role) (*models.ApplicationStats, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApplicationStats), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

// --- Shared test fixtures ---

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(config.JWTConfig{
		AccessSecret:      "handler-test-access-secret",
		RefreshSecret:     "handler-test-refresh-secret",
		AccessExpiration:  15 * time.Minute,
		RefreshExpiration: 7 * 24 * time.Hour,
	})
}

// bearerToken issues a valid access token for the given identity.
func bearerToken(issuer *auth.TokenIssuer, userID uuid.UUID, role models.Role, email string) string {
	pair, err := issuer.Issue(userID, role, email)
	if err != nil {
		panic(err)
	}
	return "Bearer " + pair.AccessToken
}

func init() {
	gin.SetMode(gin.TestMode)
}
