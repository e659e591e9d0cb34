package repositories

import (
	"errors"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter collects optional search predicates. Nil / empty fields are
// skipped; the rest are ANDed together.
type JobFilter struct {
	Location string
	Search   string
	Type     *models.JobType
	Page     int
	Size     int
}

type JobRepository interface {
	Create(job *models.Job, categoryIDs []string) error
	FindByID(id string) (*models.Job, error)
	FindAllByCreator(creatorID string) ([]models.Job, error)
	Search(filter JobFilter) ([]models.Job, int64, error)
	Update(job *models.Job, categoryIDs []string) error
	SoftDelete(id string) error
	CategoryTitles(jobIDs []string) (map[string][]string, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job, categoryIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		for _, catID := range categoryIDs {
			link := models.JobCategory{JobID: job.ID, CategoryID: catID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("CreatedBy").Preload("PaymentType").
		First(&job, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAllByCreator(creatorID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("CreatedBy").Preload("PaymentType").
		Where("created_by_id = ? AND is_deleted = false", creatorID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Search(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).
		Where("is_deleted = false AND is_archived = false")

	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("CreatedBy").Preload("PaymentType").
		Order("created_at DESC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job, categoryIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Job{}).
			Where("id = ? AND is_deleted = false", job.ID).
			Updates(map[string]interface{}{
				"title":           job.Title,
				"description":     job.Description,
				"date_from":       job.DateFrom,
				"date_to":         job.DateTo,
				"status":          job.Status,
				"type":            job.Type,
				"location":        job.Location,
				"payment_amount":  job.PaymentAmount,
				"payment_type_id": job.PaymentTypeID,
				"urgent":          job.Urgent,
				"is_archived":     job.IsArchived,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}

		// Category links are replaced wholesale.
		if categoryIDs != nil {
			if err := tx.Where("job_id = ?", job.ID).
				Delete(&models.JobCategory{}).Error; err != nil {
				return err
			}
			for _, catID := range categoryIDs {
				link := models.JobCategory{JobID: job.ID, CategoryID: catID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *JobRepositoryImpl) SoftDelete(id string) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CategoryTitles resolves category names for a batch of jobs in one query.
func (r *JobRepositoryImpl) CategoryTitles(jobIDs []string) (map[string][]string, error) {
	titles := make(map[string][]string, len(jobIDs))
	if len(jobIDs) == 0 {
		return titles, nil
	}

	type row struct {
		JobID string
		Title string
	}
	var rows []row
	err := r.db.Model(&models.JobCategory{}).
		Select("job_categories.job_id, categories.title").
		Joins("JOIN categories ON categories.id = job_categories.category_id").
		Where("job_categories.job_id IN ?", jobIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		titles[r.JobID] = append(titles[r.JobID], r.Title)
	}
	return titles, nil
}
