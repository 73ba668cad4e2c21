package auth

type SignupRequest struct {
	Name              string  `json:"name" validate:"required,min=3"`
	CountryCode       string  `json:"countryCode" validate:"required,country_code"`
	Phone             string  `json:"phone" validate:"required,phone"`
	YearsOfExperience *int    `json:"yearsOfExperience" validate:"omitempty,min=0,max=50"`
	ExperienceLevel   *string `json:"experienceLevel" validate:"omitempty,experience_level"`
	Address           *string `json:"address"`
	Password          string  `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
