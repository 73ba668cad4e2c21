package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenRepository implements domain user.RefreshTokenRepository
type RefreshTokenRepository struct {
	db *DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *DB) domainUser.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *domainUser.RefreshToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()

	dbModel := &models.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domainUser.RefreshToken, error) {
	var dbModel models.RefreshTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ? AND expires_at > NOW()", token).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &domainUser.RefreshToken{
		ID:        dbModel.ID,
		UserID:    dbModel.UserID,
		Token:     dbModel.Token,
		ExpiresAt: dbModel.ExpiresAt,
		CreatedAt: dbModel.CreatedAt,
	}, nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	result := r.db.DB.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.RefreshTokenModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", result.Error)
	}

	return nil
}
