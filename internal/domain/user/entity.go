package user

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel is the fixed enumeration of seniority levels.
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelExpert ExperienceLevel = "expert"
)

// User represents a registered account. The phone number uniquely
// identifies a user; the password is only ever stored as a bcrypt hash.
type User struct {
	ID                uuid.UUID
	Name              string
	CountryCode       string
	Phone             string
	YearsOfExperience *int
	ExperienceLevel   *ExperienceLevel
	Address           *string
	PasswordHashed    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RefreshToken is a persisted record of an issued, not-yet-expired refresh
// token. A refresh exchange requires the presented token to exist here in
// addition to passing cryptographic verification.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
