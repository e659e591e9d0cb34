package services

import (
	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared connection pool.
type ServiceContainer struct {
	AuthService        *AuthService
	UserService        *UserService
	JobService         *JobService
	ApplicationService *ApplicationService
	CategoryService    *CategoryService
	SkillService       *SkillService
	PaymentTypeService *PaymentTypeService
}

func NewServiceContainer(db *gorm.DB, tm *auth.TokenManager) *ServiceContainer {
	users := repositories.NewUserRepository(db)
	tokens := repositories.NewTokenRepository(db)
	jobs := repositories.NewJobRepository(db)
	applications := repositories.NewApplicationRepository(db)
	categories := repositories.NewCategoryRepository(db)
	skills := repositories.NewSkillRepository(db)
	paymentTypes := repositories.NewPaymentTypeRepository(db)

	return &ServiceContainer{
		AuthService:        NewAuthService(users, tokens, tm),
		UserService:        NewUserService(users, skills),
		JobService:         NewJobService(jobs, paymentTypes, categories),
		ApplicationService: NewApplicationService(applications, jobs),
		CategoryService:    NewCategoryService(categories),
		SkillService:       NewSkillService(skills),
		PaymentTypeService: NewPaymentTypeService(paymentTypes),
	}
}
