package repositories

import (
	"errors"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SoftDelete(id string) error

	// UserSkill operations
	FindSkills(userID string) ([]models.UserSkill, error)
	AddSkill(skill *models.UserSkill) error
	UpdateSkillLevel(userID, skillID string, level models.ProficiencyLevel) error
	RemoveSkill(userID, skillID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ? AND is_deleted = false", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"full_name": user.FullName,
		"bio":       user.Bio,
		"email":     user.Email,
		"phone":     user.Phone,
		"city":      user.City,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SoftDelete(id string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserSkill operations

func (r *UserRepositoryImpl) FindSkills(userID string) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

func (r *UserRepositoryImpl) AddSkill(skill *models.UserSkill) error {
	var existing models.UserSkill
	err := r.db.Where("user_id = ? AND skill_id = ?", skill.UserID, skill.SkillID).
		First(&existing).Error
	if err == nil {
		return r.db.Model(&models.UserSkill{}).
			Where("user_id = ? AND skill_id = ?", skill.UserID, skill.SkillID).
			Update("level", skill.Level).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(skill).Error
}

func (r *UserRepositoryImpl) UpdateSkillLevel(userID, skillID string, level models.ProficiencyLevel) error {
	result := r.db.Model(&models.UserSkill{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Update("level", level)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) RemoveSkill(userID, skillID string) error {
	return r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserSkill{}).Error
}
