package task

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"taskboard/internal/config"
	domainTask "taskboard/internal/domain/task"
	"taskboard/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the owner-scoped task use cases and the image
// attachment lifecycle around them.
type Service struct {
	taskRepo domainTask.Repository
	images   domainTask.ImageStore
	config   *config.Config
}

// NewService creates a new task service
func NewService(taskRepo domainTask.Repository, images domainTask.ImageStore, cfg *config.Config) *Service {
	return &Service{
		taskRepo: taskRepo,
		images:   images,
		config:   cfg,
	}
}

func (s *Service) CreateTask(ctx context.Context, ownerID uuid.UUID, req *TaskRequest, upload *ImageUpload) (*TaskResponse, error) {
	dueDate, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	var image *string
	if upload != nil {
		filename, err := s.images.Save(ctx, filepath.Ext(upload.Filename), upload.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		image = &filename
	}

	task := &domainTask.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domainTask.Priority(req.Priority),
		DueDate:     dueDate,
		Image:       image,
		UserID:      ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if image != nil {
			// Best effort: do not leave the fresh file orphaned.
			if delErr := s.images.Delete(ctx, *image); delErr != nil {
				logger.Error("Failed to clean up image after create failure",
					zap.String("filename", *image),
					zap.Error(delErr),
				)
			}
		}
		return nil, err
	}

	logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", ownerID.String()),
		zap.String("event", "task_created"),
	)

	return s.toTaskResponse(task), nil
}

func (s *Service) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*TaskResponse, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = s.toTaskResponse(t)
	}

	return responses, nil
}

func (s *Service) GetTask(ctx context.Context, taskID, ownerID uuid.UUID) (*TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	return s.toTaskResponse(task), nil
}

// UpdateTask replaces the task fields. When a new image arrives while an
// old one is attached, the old file is deleted before the row is mutated;
// an already-missing file is tolerated, any other deletion failure aborts
// the update so the database never references a file in an unknown state.
func (s *Service) UpdateTask(ctx context.Context, taskID, ownerID uuid.UUID, req *TaskRequest, upload *ImageUpload) (*TaskResponse, error) {
	dueDate, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	image := task.Image
	if upload != nil {
		if task.Image != nil {
			if err := s.deleteImageFile(ctx, *task.Image); err != nil {
				return nil, err
			}
		}

		filename, err := s.images.Save(ctx, filepath.Ext(upload.Filename), upload.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		image = &filename
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Priority = domainTask.Priority(req.Priority)
	if task.Priority == "" {
		task.Priority = domainTask.PriorityMedium
	}
	task.DueDate = dueDate
	task.Image = image

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("Task updated",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", ownerID.String()),
		zap.String("event", "task_updated"),
	)

	return s.toTaskResponse(task), nil
}

// DeleteTask removes the task and its attached image. The file goes first:
// if its deletion definitively fails the row is kept, so storage and
// database do not silently diverge.
func (s *Service) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		return err
	}

	if task.Image != nil {
		if err := s.deleteImageFile(ctx, *task.Image); err != nil {
			return err
		}
	}

	if err := s.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}

	logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("user_id", ownerID.String()),
		zap.String("event", "task_deleted"),
	)

	return nil
}

// deleteImageFile removes a stored file, treating "already absent" as
// consistent rather than an error.
func (s *Service) deleteImageFile(ctx context.Context, filename string) error {
	err := s.images.Delete(ctx, filename)
	if err == nil {
		return nil
	}
	if errors.Is(err, domainTask.ErrImageNotFound) {
		logger.Warn("Image file already absent",
			zap.String("filename", filename),
		)
		return nil
	}

	return fmt.Errorf("failed to delete image: %w", err)
}
