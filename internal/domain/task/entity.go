package task

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the fixed task priority enumeration.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a unit of work owned by exactly one user. Image holds only the
// stored filename, never a filesystem path; the public URL is derived from
// configuration at response time.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	Image       *string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
