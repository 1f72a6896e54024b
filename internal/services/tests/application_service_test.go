package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApplicationServiceTest() (context.Context, services.ApplicationService, *MockApplicationRepository, *MockJobRepository) {
	mockAppRepo := new(MockApplicationRepository)
	mockJobRepo := new(MockJobRepository)
	appService := services.NewApplicationService(mockAppRepo, mockJobRepo)
	return context.Background(), appService, mockAppRepo, mockJobRepo
}

func sampleApplication(jobID, applicantID uuid.UUID) *models.Application {
	return &models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusApplied,
		AppliedAt:   time.Now(),
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	applicantID := uuid.New()
	job := sampleJob(uuid.New())
	req := &dto.SubmitApplicationRequest{
		JobID:       job.ID,
		CoverLetter: ptr("I would love to join."),
		ApplicantID: applicantID,
		CallerRole:  models.RoleJobSeeker,
	}
	created := sampleApplication(job.ID, applicantID)

	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()
	mockAppRepo.On("GetByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(nil, storage.ErrNotFound).Once()
	mockAppRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *dto.CreateApplicationRequest) bool {
		return r.JobID == job.ID && r.ApplicantID == applicantID
	})).Return(created, nil).Once()

	app, err := appService.Submit(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_Submit_EmployerForbidden(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	req := &dto.SubmitApplicationRequest{
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		CallerRole:  models.RoleEmployer,
	}

	_, err := appService.Submit(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockJobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_JobNotFound(t *testing.T) {
	ctx, appService, _, mockJobRepo := setupApplicationServiceTest()

	jobID := uuid.New()
	req := &dto.SubmitApplicationRequest{
		JobID:       jobID,
		ApplicantID: uuid.New(),
		CallerRole:  models.RoleJobSeeker,
	}
	mockJobRepo.On("GetByID", mock.Anything, jobID).Return(nil, storage.ErrNotFound).Once()

	_, err := appService.Submit(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_Submit_Duplicate(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	applicantID := uuid.New()
	job := sampleJob(uuid.New())
	req := &dto.SubmitApplicationRequest{
		JobID:       job.ID,
		ApplicantID: applicantID,
		CallerRole:  models.RoleJobSeeker,
	}
	existing := sampleApplication(job.ID, applicantID)

	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()
	mockAppRepo.On("GetByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(existing, nil).Once()

	_, err := appService.Submit(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrDuplicateApplication))
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_DuplicateRace(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	// The pre-read sees nothing but the insert hits the unique index: a
	// concurrent submit won the race.
	applicantID := uuid.New()
	job := sampleJob(uuid.New())
	req := &dto.SubmitApplicationRequest{
		JobID:       job.ID,
		ApplicantID: applicantID,
		CallerRole:  models.RoleJobSeeker,
	}

	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()
	mockAppRepo.On("GetByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(nil, storage.ErrNotFound).Once()
	mockAppRepo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateApplication).Once()

	_, err := appService.Submit(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrDuplicateApplication))
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_ListMine(t *testing.T) {
	ctx, appService, mockAppRepo, _ := setupApplicationServiceTest()

	applicantID := uuid.New()
	expected := []models.ApplicationWithJob{
		{
			Application: *sampleApplication(uuid.New(), applicantID),
			Job:         models.JobSummary{Title: "Backend Engineer", Company: "Acme Corp"},
		},
	}
	mockAppRepo.On("ListByApplicant", mock.Anything, applicantID).Return(expected, nil).Once()

	apps, err := appService.ListMine(ctx, applicantID)

	require.NoError(t, err)
	assert.Equal(t, expected, apps)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_ListForJob_Success(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	employerID := uuid.New()
	job := sampleJob(employerID)
	expected := []models.ApplicationWithApplicant{
		{
			Application: *sampleApplication(job.ID, uuid.New()),
			Applicant:   models.ApplicantSummary{Name: "Jane Seeker", Email: "jane@example.com"},
		},
	}

	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()
	mockAppRepo.On("ListByJob", mock.Anything, job.ID).Return(expected, nil).Once()

	apps, err := appService.ListForJob(ctx, job.ID, employerID, models.RoleEmployer)

	require.NoError(t, err)
	assert.Equal(t, expected, apps)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_ListForJob_OtherEmployerForbidden(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	job := sampleJob(uuid.New())
	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()

	_, err := appService.ListForJob(ctx, job.ID, uuid.New(), models.RoleEmployer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateStatus_Success(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	employerID := uuid.New()
	job := sampleJob(employerID)
	app := sampleApplication(job.ID, uuid.New())
	updated := *app
	updated.Status = models.StatusAccepted

	req := &dto.UpdateApplicationStatusRequest{
		ID:         app.ID,
		Status:     models.StatusAccepted,
		EmployerID: employerID,
		CallerRole: models.RoleEmployer,
	}

	mockAppRepo.On("GetByID", mock.Anything, app.ID).Return(app, nil).Once()
	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()
	mockAppRepo.On("UpdateStatus", mock.Anything, app.ID, models.StatusAccepted).Return(&updated, nil).Once()

	result, err := appService.UpdateStatus(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, result.Status)
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateStatus_OtherEmployerForbidden(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	job := sampleJob(uuid.New())
	app := sampleApplication(job.ID, uuid.New())

	req := &dto.UpdateApplicationStatusRequest{
		ID:         app.ID,
		Status:     models.StatusRejected,
		EmployerID: uuid.New(),
		CallerRole: models.RoleEmployer,
	}

	mockAppRepo.On("GetByID", mock.Anything, app.ID).Return(app, nil).Once()
	mockJobRepo.On("GetByID", mock.Anything, job.ID).Return(job, nil).Once()

	_, err := appService.UpdateStatus(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	ctx, appService, mockAppRepo, _ := setupApplicationServiceTest()

	appID := uuid.New()
	req := &dto.UpdateApplicationStatusRequest{
		ID:         appID,
		Status:     models.StatusReviewed,
		EmployerID: uuid.New(),
		CallerRole: models.RoleEmployer,
	}
	mockAppRepo.On("GetByID", mock.Anything, appID).Return(nil, storage.ErrNotFound).Once()

	_, err := appService.UpdateStatus(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_Stats(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		statuses []models.ApplicationStatus
		expected models.ApplicationStats
	}{
		{
			name: "Seeker With Mixed Statuses",
			role: models.RoleJobSeeker,
			statuses: []models.ApplicationStatus{
				models.StatusApplied,
				models.StatusApplied,
				models.StatusReviewed,
				models.StatusRejected,
				models.StatusAccepted,
			},
			expected: models.ApplicationStats{Total: 5, Applied: 2, Reviewed: 1, Rejected: 1, Accepted: 1},
		},
		{
			name:     "Single Accepted",
			role:     models.RoleJobSeeker,
			statuses: []models.ApplicationStatus{models.StatusAccepted},
			expected: models.ApplicationStats{Total: 1, Accepted: 1},
		},
		{
			name:     "Employer With No Applications",
			role:     models.RoleEmployer,
			statuses: []models.ApplicationStatus{},
			expected: models.ApplicationStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, appService, mockAppRepo, _ := setupApplicationServiceTest()
			userID := uuid.New()

			if tt.role == models.RoleEmployer {
				mockAppRepo.On("ListStatusesByEmployer", mock.Anything, userID).Return(tt.statuses, nil).Once()
			} else {
				mockAppRepo.On("ListStatusesByApplicant", mock.Anything, userID).Return(tt.statuses, nil).Once()
			}

			stats, err := appService.Stats(ctx, userID, tt.role)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *stats)
			mockAppRepo.AssertExpectations(t)
		})
	}
}
