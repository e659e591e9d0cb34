package repositories

import (
	"errors"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrPaymentTypeNotFound = errors.New("payment type not found")
)

type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id string) (*models.Category, error)
}

type SkillRepository interface {
	FindAll() ([]models.Skill, error)
	FindByID(id string) (*models.Skill, error)
	FindByIDs(ids []string) ([]models.Skill, error)
}

type PaymentTypeRepository interface {
	FindAll() ([]models.PaymentType, error)
	FindByID(id string) (*models.PaymentType, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_deleted = false").Order("title").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("is_deleted = false").Order("title").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByIDs(ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := r.db.Where("id IN ? AND is_deleted = false", ids).Find(&skills).Error
	return skills, err
}

type PaymentTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentTypeRepository(db *gorm.DB) PaymentTypeRepository {
	return &PaymentTypeRepositoryImpl{db: db}
}

func (r *PaymentTypeRepositoryImpl) FindAll() ([]models.PaymentType, error) {
	var types []models.PaymentType
	err := r.db.Where("is_deleted = false").Order("title").Find(&types).Error
	return types, err
}

func (r *PaymentTypeRepositoryImpl) FindByID(id string) (*models.PaymentType, error) {
	var pt models.PaymentType
	err := r.db.First(&pt, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentTypeNotFound
		}
		return nil, err
	}
	return &pt, nil
}
