package services

import (
	"context"

	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type ApplicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
}

func NewApplicationService(applications repositories.ApplicationRepository, jobs repositories.JobRepository) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

// Create submits an application. One live application per (user, job); a
// second attempt is a conflict. Withdrawn applications do not block a retry.
func (s *ApplicationService) Create(ctx context.Context, caller *models.User, req *dto.ApplicationRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobs.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CreatedByID == caller.ID {
		return nil, apperrors.ErrInvalidOperation("application", "You cannot apply to your own job")
	}

	exists, err := s.applications.ExistsActive(caller.ID, req.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		UserID:  caller.ID,
		JobID:   req.JobID,
		Message: req.Message,
		Status:  models.ApplicationStatusPending,
	}
	if err := s.applications.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application created", "application_id", app.ID, "job_id", req.JobID, "user_id", caller.ID)
	return s.GetByID(ctx, caller, app.ID)
}

// GetByID returns one application, visible only to the applicant and the
// job's owner.
func (s *ApplicationService) GetByID(ctx context.Context, caller *models.User, id string) (*dto.ApplicationResponse, error) {
	app, err := s.applications.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}
	if !s.canView(caller, app) {
		return nil, apperrors.ErrNotOwner
	}
	return toApplicationResponse(app), nil
}

// ListOwn returns the caller's applications.
func (s *ApplicationService) ListOwn(ctx context.Context, caller *models.User) ([]dto.ApplicationResponse, error) {
	apps, err := s.applications.FindAllByUser(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// ListByJob returns applications for one job; only the job's owner may look.
func (s *ApplicationService) ListByJob(ctx context.Context, caller *models.User, jobID string, statusFilter string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CreatedByID != caller.ID {
		return nil, apperrors.ErrNotOwner
	}

	var status *models.ApplicationStatus
	if statusFilter != "" {
		parsed, err := models.ParseApplicationStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid status filter: " + statusFilter)
		}
		status = &parsed
	}

	apps, err := s.applications.FindAllByJob(jobID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// ListForEmployer returns every application to any of the caller's jobs.
func (s *ApplicationService) ListForEmployer(ctx context.Context, caller *models.User) ([]dto.ApplicationResponse, error) {
	apps, err := s.applications.FindAllForEmployer(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), nil
}

// UpdateStatus lets the job's owner accept or reject. Setting the status it
// already has is reported as not found, so clients cannot distinguish a
// missing application from a no-op.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller *models.User, id string, req *dto.StatusUpdateRequest) (*dto.ApplicationResponse, error) {
	status, err := models.ParseApplicationStatus(req.Status)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid application status: " + req.Status)
	}

	app, err := s.applications.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}
	if app.Job == nil || app.Job.CreatedByID != caller.ID {
		return nil, apperrors.ErrNotOwner
	}
	if app.Status == status {
		return nil, apperrors.ErrApplicationUnchanged
	}

	if err := s.applications.UpdateStatus(id, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application status changed", "application_id", id, "status", status, "user_id", caller.ID)
	app.Status = status
	return toApplicationResponse(app), nil
}

// Delete withdraws an application. The applicant or the job's owner may do
// it; deleting an already withdrawn application reports not found.
func (s *ApplicationService) Delete(ctx context.Context, caller *models.User, id string) error {
	app, err := s.applications.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application")
		}
		return apperrors.InternalError(err)
	}
	if !s.canView(caller, app) {
		return apperrors.ErrNotOwner
	}

	if err := s.applications.SoftDelete(id); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "application")
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application deleted", "application_id", id, "user_id", caller.ID)
	return nil
}

func (s *ApplicationService) canView(caller *models.User, app *models.Application) bool {
	if app.UserID == caller.ID {
		return true
	}
	return app.Job != nil && app.Job.CreatedByID == caller.ID
}

func toApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:      app.ID,
		UserID:  app.UserID,
		JobID:   app.JobID,
		Message: app.Message,
		Status:  app.Status,
	}
	if app.User != nil {
		resp.UserFullName = app.User.FullName
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
	}
	return resp
}

func toApplicationResponses(apps []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, *toApplicationResponse(&apps[i]))
	}
	return responses
}
