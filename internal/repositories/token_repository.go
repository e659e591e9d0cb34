package repositories

import (
	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

// TokenRepository keeps an audit trail of issued tokens. A write failure
// here never blocks authentication.
type TokenRepository interface {
	Create(token *models.IssuedToken) error
	DeleteExpired() error
}

type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) Create(token *models.IssuedToken) error {
	return r.db.Create(token).Error
}

func (r *TokenRepositoryImpl) DeleteExpired() error {
	return r.db.Where("expires_at < now()").Delete(&models.IssuedToken{}).Error
}
