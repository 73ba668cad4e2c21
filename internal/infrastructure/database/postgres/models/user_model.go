package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	CountryCode       string    `gorm:"type:varchar(8);not null"`
	Phone             string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	YearsOfExperience *int
	ExperienceLevel   *string   `gorm:"type:varchar(20)"`
	Address           *string   `gorm:"type:text"`
	PasswordHashed    string    `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel represents the database model for RefreshToken
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"constraint:OnDelete:CASCADE"`
	Token     string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
