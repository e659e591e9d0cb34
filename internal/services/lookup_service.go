package services

import (
	"context"

	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

// Reference data services. Read-only; the catalogs are seeded at migration
// time.

type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.CategoryResponse{ID: c.ID, Title: c.Title, Description: c.Description})
	}
	return result, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "category")
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.CategoryResponse{ID: category.ID, Title: category.Title, Description: category.Description}, nil
}

type SkillService struct {
	skills repositories.SkillRepository
}

func NewSkillService(skills repositories.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

func (s *SkillService) List(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := make([]dto.SkillResponse, 0, len(skills))
	for _, sk := range skills {
		result = append(result, dto.SkillResponse{ID: sk.ID, Title: sk.Title, Description: sk.Description})
	}
	return result, nil
}

type PaymentTypeService struct {
	paymentTypes repositories.PaymentTypeRepository
}

func NewPaymentTypeService(paymentTypes repositories.PaymentTypeRepository) *PaymentTypeService {
	return &PaymentTypeService{paymentTypes: paymentTypes}
}

func (s *PaymentTypeService) List(ctx context.Context) ([]dto.PaymentTypeResponse, error) {
	types, err := s.paymentTypes.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := make([]dto.PaymentTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, dto.PaymentTypeResponse{ID: t.ID, Title: t.Title, Description: t.Description})
	}
	return result, nil
}
