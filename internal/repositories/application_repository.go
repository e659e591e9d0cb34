package repositories

import (
	"errors"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	ExistsActive(userID, jobID string) (bool, error)
	FindAllByUser(userID string) ([]models.Application, error)
	FindAllByJob(jobID string, status *models.ApplicationStatus) ([]models.Application, error)
	FindAllForEmployer(employerID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	SoftDelete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("User").Preload("Job").
		First(&app, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ExistsActive reports whether the user already has a live application for
// the job. Soft-deleted applications do not count, so a withdrawn applicant
// can apply again.
func (r *ApplicationRepositoryImpl) ExistsActive(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ? AND is_deleted = false", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindAllByUser(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("User").Preload("Job").
		Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAllByJob(jobID string, status *models.ApplicationStatus) ([]models.Application, error) {
	query := r.db.Preload("User").Preload("Job").
		Where("job_id = ? AND is_deleted = false", jobID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var apps []models.Application
	err := query.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// FindAllForEmployer returns applications to any job the employer created.
func (r *ApplicationRepositoryImpl) FindAllForEmployer(employerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("User").Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.created_by_id = ? AND applications.is_deleted = false", employerID).
		Order("applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ? AND is_deleted = false", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) SoftDelete(id string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
