package user

import (
	"time"

	domainUser "taskboard/internal/domain/user"

	"github.com/google/uuid"
)

// UpdateUserRequest is the full user payload; updates re-validate every
// field and re-hash the password.
type UpdateUserRequest struct {
	Name              string  `json:"name" validate:"required,min=3"`
	CountryCode       string  `json:"countryCode" validate:"required,country_code"`
	Phone             string  `json:"phone" validate:"required,phone"`
	YearsOfExperience *int    `json:"yearsOfExperience" validate:"omitempty,min=0,max=50"`
	ExperienceLevel   *string `json:"experienceLevel" validate:"omitempty,experience_level"`
	Address           *string `json:"address"`
	Password          string  `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	CountryCode       string    `json:"countryCode"`
	Phone             string    `json:"phone"`
	YearsOfExperience *int      `json:"yearsOfExperience"`
	ExperienceLevel   *string   `json:"experienceLevel"`
	Address           *string   `json:"address"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}

	var level *string
	if u.ExperienceLevel != nil {
		s := string(*u.ExperienceLevel)
		level = &s
	}

	return &UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		CountryCode:       u.CountryCode,
		Phone:             u.Phone,
		YearsOfExperience: u.YearsOfExperience,
		ExperienceLevel:   level,
		Address:           u.Address,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
