package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel represents the database model for Task
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate     *time.Time
	Image       *string   `gorm:"type:varchar(255)"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
