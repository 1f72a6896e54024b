package handlers

import (
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Phone:          user.Phone,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		Location:    job.Location,
		SalaryRange: job.SalaryRange,
		JobType:     job.JobType,
		EmployerID:  job.EmployerID,
		CreatedAt:   job.CreatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		Status:      app.Status,
		CoverLetter: app.CoverLetter,
		AppliedAt:   app.AppliedAt,
	}
}

// MapApplicationWithJobToResponse converts an enriched application for seeker listings.
func MapApplicationWithJobToResponse(app *models.ApplicationWithJob) dto.ApplicationWithJobResponse {
	return dto.ApplicationWithJobResponse{
		ApplicationResponse: MapApplicationModelToResponse(&app.Application),
		Job: dto.JobSummaryResponse{
			Title:       app.Job.Title,
			Company:     app.Job.Company,
			Location:    app.Job.Location,
			JobType:     app.Job.JobType,
			SalaryRange: app.Job.SalaryRange,
		},
	}
}

// MapApplicationWithApplicantToResponse converts an enriched application for employer listings.
func MapApplicationWithApplicantToResponse(app *models.ApplicationWithApplicant) dto.ApplicationWithApplicantResponse {
	return dto.ApplicationWithApplicantResponse{
		ApplicationResponse: MapApplicationModelToResponse(&app.Application),
		Applicant: dto.ApplicantSummaryResponse{
			Name:  app.Applicant.Name,
			Email: app.Applicant.Email,
		},
	}
}

// MapStatsToResponse converts aggregated counts to the response shape.
func MapStatsToResponse(stats *models.ApplicationStats) dto.ApplicationStatsResponse {
	return dto.ApplicationStatsResponse{
		Total:    stats.Total,
		Applied:  stats.Applied,
		Reviewed: stats.Reviewed,
		Rejected: stats.Rejected,
		Accepted: stats.Accepted,
	}
}
