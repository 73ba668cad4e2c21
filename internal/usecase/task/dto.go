package task

import (
	"time"

	domainTask "taskboard/internal/domain/task"

	"github.com/google/uuid"
)

// TaskRequest carries the writable task fields for create and update.
// Multipart form fields on POST/PUT, so the tags cover both bindings.
type TaskRequest struct {
	Title       string  `form:"title" json:"title" validate:"required,min=3"`
	Description *string `form:"description" json:"description"`
	Priority    string  `form:"priority" json:"priority" validate:"omitempty,task_priority"`
	DueDate     string  `form:"dueDate" json:"dueDate"`
}

// ImageUpload is a decoded multipart image attachment.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Image       *string    `json:"image"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (s *Service) toTaskResponse(t *domainTask.Task) *TaskResponse {
	var imageURL *string
	if t.Image != nil {
		u := s.config.Storage.BaseURL + "/" + *t.Image
		imageURL = &u
	}

	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Image:       imageURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
