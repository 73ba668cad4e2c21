package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// RefreshTokenRepository tracks issued refresh tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	// GetByToken returns the stored record for an unexpired token, or
	// ErrTokenInvalid when absent or expired.
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteExpired(ctx context.Context, olderThan time.Duration) error
}
