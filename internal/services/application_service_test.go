package services

import (
	"context"
	"testing"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *fakeJobRepo, *fakeApplicationRepo, *models.User, *models.User, *models.Job) {
	t.Helper()

	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(apps, jobs)

	employer := &models.User{Role: models.UserRoleEmployer, FullName: "Boss"}
	employer.ID = "employer-1"
	freelancer := &models.User{Role: models.UserRoleFreelancer, FullName: "Worker"}
	freelancer.ID = "freelancer-1"
	apps.users[employer.ID] = employer
	apps.users[freelancer.ID] = freelancer

	job := &models.Job{CreatedByID: employer.ID, Title: "Fix the roof"}
	require.NoError(t, jobs.Create(job, nil))

	return svc, jobs, apps, employer, freelancer, job
}

func TestApplicationCreate_Success(t *testing.T) {
	svc, _, _, _, freelancer, job := newApplicationFixture(t)

	resp, err := svc.Create(context.Background(), freelancer, &dto.ApplicationRequest{
		JobID:   job.ID,
		Message: "I can start tomorrow",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, freelancer.ID, resp.UserID)
	assert.Equal(t, "Fix the roof", resp.JobTitle)
}

func TestApplicationCreate_DuplicateConflict(t *testing.T) {
	svc, _, _, _, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "first"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "second"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestApplicationCreate_RetryAfterWithdraw(t *testing.T) {
	svc, _, _, _, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "first"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, freelancer, first.ID))

	// A withdrawn application no longer blocks a new one.
	_, err = svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "again"})
	assert.NoError(t, err)
}

func TestApplicationCreate_OwnJobRejected(t *testing.T) {
	svc, _, _, employer, _, job := newApplicationFixture(t)

	_, err := svc.Create(context.Background(), employer, &dto.ApplicationRequest{JobID: job.ID, Message: "me"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestApplicationCreate_MissingJob(t *testing.T) {
	svc, _, _, _, freelancer, _ := newApplicationFixture(t)

	_, err := svc.Create(context.Background(), freelancer, &dto.ApplicationRequest{JobID: "nope", Message: "hi"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApplicationUpdateStatus_OwnerAccepts(t *testing.T) {
	svc, _, _, employer, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, employer, created.ID, &dto.StatusUpdateRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, resp.Status)
}

func TestApplicationUpdateStatus_SameStatusIsNoop(t *testing.T) {
	svc, _, _, employer, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	// Setting pending on a pending application reads as not found.
	_, err = svc.UpdateStatus(ctx, employer, created.ID, &dto.StatusUpdateRequest{Status: "pending"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApplicationUpdateStatus_NonOwnerForbidden(t *testing.T) {
	svc, _, _, _, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	// The applicant is not the job owner and may not decide.
	_, err = svc.UpdateStatus(ctx, freelancer, created.ID, &dto.StatusUpdateRequest{Status: "accepted"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestApplicationDelete_TwiceFails(t *testing.T) {
	svc, _, _, _, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, freelancer, created.ID))

	err = svc.Delete(ctx, freelancer, created.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApplicationDelete_JobOwnerMay(t *testing.T) {
	svc, _, _, employer, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, employer, created.ID))
}

func TestApplicationListByJob_OnlyOwner(t *testing.T) {
	svc, _, _, employer, freelancer, job := newApplicationFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, freelancer, &dto.ApplicationRequest{JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	list, err := svc.ListByJob(ctx, employer, job.ID, "pending")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByJob(ctx, freelancer, job.ID, "pending")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)
}
