package services

import (
	"fmt"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeJobRepo struct {
	jobs       map[string]*models.Job
	categories map[string][]string // jobID -> category titles
	nextID     int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:       make(map[string]*models.Job),
		categories: make(map[string][]string),
	}
}

func (f *fakeJobRepo) Create(job *models.Job, categoryIDs []string) error {
	f.nextID++
	job.ID = fmt.Sprintf("job-%d", f.nextID)
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok || job.IsDeleted {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) FindAllByCreator(creatorID string) ([]models.Job, error) {
	var result []models.Job
	for _, job := range f.jobs {
		if job.CreatedByID == creatorID && !job.IsDeleted {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (f *fakeJobRepo) Search(filter repositories.JobFilter) ([]models.Job, int64, error) {
	var all []models.Job
	for _, job := range f.jobs {
		if job.IsDeleted || job.IsArchived {
			continue
		}
		if filter.Type != nil && job.Type != *filter.Type {
			continue
		}
		all = append(all, *job)
	}
	total := int64(len(all))

	start := filter.Page * filter.Size
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeJobRepo) Update(job *models.Job, categoryIDs []string) error {
	existing, ok := f.jobs[job.ID]
	if !ok || existing.IsDeleted {
		return repositories.ErrJobNotFound
	}
	job.CreatedByID = existing.CreatedByID
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) SoftDelete(id string) error {
	job, ok := f.jobs[id]
	if !ok || job.IsDeleted {
		return repositories.ErrJobNotFound
	}
	job.IsDeleted = true
	return nil
}

func (f *fakeJobRepo) CategoryTitles(jobIDs []string) (map[string][]string, error) {
	result := make(map[string][]string)
	for _, id := range jobIDs {
		if titles, ok := f.categories[id]; ok {
			result[id] = titles
		}
	}
	return result, nil
}

type fakeApplicationRepo struct {
	apps   map[string]*models.Application
	jobs   *fakeJobRepo
	users  map[string]*models.User
	nextID int
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[string]*models.Application),
		jobs:  jobs,
		users: make(map[string]*models.User),
	}
}

func (f *fakeApplicationRepo) Create(app *models.Application) error {
	f.nextID++
	app.ID = fmt.Sprintf("app-%d", f.nextID)
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

// hydrate mimics the gorm preloads.
func (f *fakeApplicationRepo) hydrate(app models.Application) models.Application {
	if job, ok := f.jobs.jobs[app.JobID]; ok {
		copied := *job
		app.Job = &copied
	}
	if user, ok := f.users[app.UserID]; ok {
		copied := *user
		app.User = &copied
	}
	return app
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	app, ok := f.apps[id]
	if !ok || app.IsDeleted {
		return nil, repositories.ErrApplicationNotFound
	}
	hydrated := f.hydrate(*app)
	return &hydrated, nil
}

func (f *fakeApplicationRepo) ExistsActive(userID, jobID string) (bool, error) {
	for _, app := range f.apps {
		if app.UserID == userID && app.JobID == jobID && !app.IsDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) FindAllByUser(userID string) ([]models.Application, error) {
	var result []models.Application
	for _, app := range f.apps {
		if app.UserID == userID && !app.IsDeleted {
			result = append(result, f.hydrate(*app))
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) FindAllByJob(jobID string, status *models.ApplicationStatus) ([]models.Application, error) {
	var result []models.Application
	for _, app := range f.apps {
		if app.JobID != jobID || app.IsDeleted {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		result = append(result, f.hydrate(*app))
	}
	return result, nil
}

func (f *fakeApplicationRepo) FindAllForEmployer(employerID string) ([]models.Application, error) {
	var result []models.Application
	for _, app := range f.apps {
		if app.IsDeleted {
			continue
		}
		job, ok := f.jobs.jobs[app.JobID]
		if ok && job.CreatedByID == employerID {
			result = append(result, f.hydrate(*app))
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	app, ok := f.apps[id]
	if !ok || app.IsDeleted {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationRepo) SoftDelete(id string) error {
	app, ok := f.apps[id]
	if !ok || app.IsDeleted {
		return repositories.ErrApplicationNotFound
	}
	app.IsDeleted = true
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func (f *fakeCategoryRepo) FindAll() ([]models.Category, error) {
	var result []models.Category
	for _, c := range f.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (f *fakeCategoryRepo) FindByID(id string) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

type fakePaymentTypeRepo struct {
	types map[string]*models.PaymentType
}

func (f *fakePaymentTypeRepo) FindAll() ([]models.PaymentType, error) {
	var result []models.PaymentType
	for _, pt := range f.types {
		result = append(result, *pt)
	}
	return result, nil
}

func (f *fakePaymentTypeRepo) FindByID(id string) (*models.PaymentType, error) {
	pt, ok := f.types[id]
	if !ok {
		return nil, repositories.ErrPaymentTypeNotFound
	}
	return pt, nil
}
