package services

import (
	"context"

	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

const (
	DefaultPage = 0
	DefaultSize = 6
)

type JobService struct {
	jobs         repositories.JobRepository
	paymentTypes repositories.PaymentTypeRepository
	categories   repositories.CategoryRepository
}

func NewJobService(jobs repositories.JobRepository, paymentTypes repositories.PaymentTypeRepository, categories repositories.CategoryRepository) *JobService {
	return &JobService{jobs: jobs, paymentTypes: paymentTypes, categories: categories}
}

// Search runs the public listing. Every provided filter narrows the result;
// an unrecognized type value is ignored rather than rejected so stale links
// keep working.
func (s *JobService) Search(ctx context.Context, query *dto.JobSearchQuery) (*dto.PaginatedJobResponse, error) {
	filter := repositories.JobFilter{
		Location: query.Location,
		Search:   query.Search,
		Page:     query.Page,
		Size:     query.Size,
	}
	if filter.Page < 0 {
		filter.Page = DefaultPage
	}
	if filter.Size <= 0 {
		filter.Size = DefaultSize
	}
	if query.Type != "" {
		if t, err := models.ParseJobType(query.Type); err == nil {
			filter.Type = &t
		} else {
			logger.CtxDebug(ctx, "ignoring unknown job type filter", "type", query.Type)
		}
	}

	jobs, total, err := s.jobs.Search(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses, err := s.toJobResponses(jobs)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Size
	if int(total)%filter.Size != 0 {
		totalPages++
	}

	return &dto.PaginatedJobResponse{
		Content:       responses,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          filter.Page,
		Size:          filter.Size,
	}, nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job")
		}
		return nil, apperrors.InternalError(err)
	}

	responses, err := s.toJobResponses([]models.Job{*job})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *JobService) ListByCreator(ctx context.Context, creatorID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.FindAllByCreator(creatorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toJobResponses(jobs)
}

func (s *JobService) Create(ctx context.Context, creator *models.User, req *dto.JobRequest) (*dto.JobResponse, error) {
	job, err := s.jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	job.CreatedByID = creator.ID

	if err := s.jobs.Create(job, req.CategoryIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "user_id", creator.ID)
	return s.GetByID(ctx, job.ID)
}

// Update replaces the mutable fields of a job the caller owns.
func (s *JobService) Update(ctx context.Context, caller *models.User, jobID string, req *dto.JobRequest) (*dto.JobResponse, error) {
	existing, err := s.jobs.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job")
		}
		return nil, apperrors.InternalError(err)
	}
	if existing.CreatedByID != caller.ID {
		return nil, apperrors.ErrNotOwner
	}

	job, err := s.jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	job.ID = jobID

	if err := s.jobs.Update(job, req.CategoryIDs); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job updated", "job_id", jobID, "user_id", caller.ID)
	return s.GetByID(ctx, jobID)
}

func (s *JobService) Delete(ctx context.Context, caller *models.User, jobID string) error {
	existing, err := s.jobs.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job")
		}
		return apperrors.InternalError(err)
	}
	if existing.CreatedByID != caller.ID {
		return apperrors.ErrNotOwner
	}

	if err := s.jobs.SoftDelete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job")
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", jobID, "user_id", caller.ID)
	return nil
}

func (s *JobService) jobFromRequest(req *dto.JobRequest) (*models.Job, error) {
	jobType, err := models.ParseJobType(req.Type)
	if err != nil {
		return nil, apperrors.ErrInvalidJobType
	}

	status := models.JobStatusOpen
	if req.Status != "" {
		status, err = models.ParseJobStatus(req.Status)
		if err != nil {
			return nil, apperrors.ErrInvalidJobStatus
		}
	}

	if _, err := s.paymentTypes.FindByID(req.PaymentTypeID); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentTypeNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment_type")
		}
		return nil, apperrors.InternalError(err)
	}
	for _, catID := range req.CategoryIDs {
		if _, err := s.categories.FindByID(catID); err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err, "category")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return &models.Job{
		Title:         req.Title,
		Description:   req.Description,
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
		Status:        status,
		Type:          jobType,
		Location:      req.Location,
		PaymentAmount: req.PaymentAmount,
		PaymentTypeID: req.PaymentTypeID,
		Urgent:        req.Urgent,
	}, nil
}

func (s *JobService) toJobResponses(jobs []models.Job) ([]dto.JobResponse, error) {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	categoryTitles, err := s.jobs.CategoryTitles(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp := dto.JobResponse{
			ID:            j.ID,
			CreatedBy:     j.CreatedByID,
			Title:         j.Title,
			Description:   j.Description,
			DateFrom:      j.DateFrom,
			DateTo:        j.DateTo,
			Status:        j.Status,
			Type:          j.Type,
			Location:      j.Location,
			PaymentAmount: j.PaymentAmount,
			Urgent:        j.Urgent,
			Categories:    categoryTitles[j.ID],
		}
		if resp.Categories == nil {
			resp.Categories = []string{}
		}
		if j.CreatedBy != nil {
			resp.CreatedByName = j.CreatedBy.FullName
		}
		if j.PaymentType != nil {
			resp.PaymentType = j.PaymentType.Title
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
