package services

import (
	"context"
	"time"

	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type AuthService struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	tm     *auth.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, tm *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, tm: tm}
}

// Register creates a user and immediately logs them in. Admin accounts are
// seeded at startup and can never be created through this path.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role, err := models.ParseUserRole(req.Role)
	if err != nil || role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Role:         role,
	}

	if err := s.users.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return s.issueFor(ctx, user)
}

// Login verifies the credentials. The same error is returned for an unknown
// username and a wrong password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return s.issueFor(ctx, user)
}

func (s *AuthService) issueFor(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tm.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Audit only; a failed insert must not fail the login.
	record := &models.IssuedToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.tm.TTL()),
	}
	if err := s.tokens.Create(record); err != nil {
		logger.CtxWarn(ctx, "failed to record issued token", "user_id", user.ID, "error", err)
	}

	return &dto.AuthResponse{AccessToken: token, TokenType: "Bearer"}, nil
}
