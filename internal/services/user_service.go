package services

import (
	"context"

	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type UserService struct {
	users  repositories.UserRepository
	skills repositories.SkillRepository
}

func NewUserService(users repositories.UserRepository, skills repositories.SkillRepository) *UserService {
	return &UserService{users: users, skills: skills}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user")
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user), nil
}

// Update applies a partial update to the caller's own profile.
func (s *UserService) Update(ctx context.Context, id string, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.City != nil {
		user.City = *req.City
	}

	if err := s.users.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user profile updated", "user_id", id)
	return toUserResponse(user), nil
}

// Delete soft-deletes the account. Deleting twice reports not found.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.SoftDelete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "user deleted", "user_id", id)
	return nil
}

// Skills

func (s *UserService) ListSkills(ctx context.Context, userID string) ([]dto.UserSkillResponse, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user")
		}
		return nil, apperrors.InternalError(err)
	}

	userSkills, err := s.users.FindSkills(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(userSkills))
	for _, us := range userSkills {
		ids = append(ids, us.SkillID)
	}
	catalog, err := s.skills.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	titles := make(map[string]string, len(catalog))
	for _, sk := range catalog {
		titles[sk.ID] = sk.Title
	}

	result := make([]dto.UserSkillResponse, 0, len(userSkills))
	for _, us := range userSkills {
		result = append(result, dto.UserSkillResponse{
			SkillID: us.SkillID,
			Title:   titles[us.SkillID],
			Level:   us.Level,
		})
	}
	return result, nil
}

func (s *UserService) AddSkill(ctx context.Context, userID string, req *dto.AddUserSkillRequest) error {
	if _, err := s.skills.FindByID(req.SkillID); err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err, "skill")
		}
		return apperrors.InternalError(err)
	}

	skill := &models.UserSkill{
		UserID:  userID,
		SkillID: req.SkillID,
		Level:   models.ParseProficiencyLevel(req.Level),
	}
	if err := s.users.AddSkill(skill); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user skill added", "user_id", userID, "skill_id", req.SkillID)
	return nil
}

func (s *UserService) UpdateSkill(ctx context.Context, userID, skillID string, req *dto.UpdateUserSkillRequest) error {
	level := models.ParseProficiencyLevel(req.Level)
	if err := s.users.UpdateSkillLevel(userID, skillID, level); err != nil {
		return apperrors.ErrNotFound(err, "skill")
	}
	return nil
}

func (s *UserService) RemoveSkill(ctx context.Context, userID, skillID string) error {
	if err := s.users.RemoveSkill(userID, skillID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Bio:      user.Bio,
		Email:    user.Email,
		Phone:    user.Phone,
		City:     user.City,
		Role:     user.Role,
	}
}
