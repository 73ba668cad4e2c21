package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements domain user.Repository
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "phone") {
			return domainUser.ErrPhoneAlreadyUsed
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where("phone = ?", phone).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) Update(ctx context.Context, u *domainUser.User) error {
	u.UpdatedAt = time.Now()

	var level *string
	if u.ExperienceLevel != nil {
		s := string(*u.ExperienceLevel)
		level = &s
	}

	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":                u.Name,
			"country_code":        u.CountryCode,
			"phone":               u.Phone,
			"years_of_experience": u.YearsOfExperience,
			"experience_level":    level,
			"address":             u.Address,
			"password_hashed":     u.PasswordHashed,
			"updated_at":          u.UpdatedAt,
		})

	if result.Error != nil {
		errStr := strings.ToLower(result.Error.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "phone") {
			return domainUser.ErrPhoneAlreadyUsed
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models

func toUserModel(u *domainUser.User) *models.UserModel {
	var level *string
	if u.ExperienceLevel != nil {
		s := string(*u.ExperienceLevel)
		level = &s
	}
	return &models.UserModel{
		ID:                u.ID,
		Name:              u.Name,
		CountryCode:       u.CountryCode,
		Phone:             u.Phone,
		YearsOfExperience: u.YearsOfExperience,
		ExperienceLevel:   level,
		Address:           u.Address,
		PasswordHashed:    u.PasswordHashed,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	var level *domainUser.ExperienceLevel
	if m.ExperienceLevel != nil {
		l := domainUser.ExperienceLevel(*m.ExperienceLevel)
		level = &l
	}
	return &domainUser.User{
		ID:                m.ID,
		Name:              m.Name,
		CountryCode:       m.CountryCode,
		Phone:             m.Phone,
		YearsOfExperience: m.YearsOfExperience,
		ExperienceLevel:   level,
		Address:           m.Address,
		PasswordHashed:    m.PasswordHashed,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
