package task

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for tasks. Every lookup of
// a single task conjoins the task ID with the owner ID; a task ID alone is
// never sufficient to reach a record.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID, ownerID uuid.UUID) (*Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID, ownerID uuid.UUID) error
}

// ImageStore persists uploaded image bytes under generated filenames.
type ImageStore interface {
	// Save writes the data and returns the generated filename.
	Save(ctx context.Context, ext string, data []byte) (string, error)
	// Delete removes a stored file. A missing file yields ErrImageNotFound.
	Delete(ctx context.Context, filename string) error
}
