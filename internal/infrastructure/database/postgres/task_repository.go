package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainTask "taskboard/internal/domain/task"
	"taskboard/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository implements domain task.Repository. Single-task queries
// always filter on both id and user_id, so a non-owner can never reach a
// record.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) domainTask.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domainTask.Task) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	if t.Priority == "" {
		t.Priority = domainTask.PriorityMedium
	}

	dbModel := toTaskModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	t.ID = dbModel.ID
	t.CreatedAt = dbModel.CreatedAt
	t.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID, ownerID uuid.UUID) (*domainTask.Task, error) {
	var dbModel models.TaskModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainTask.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return toTaskEntity(&dbModel), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domainTask.Task, error) {
	var dbModels []models.TaskModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domainTask.Task, len(dbModels))
	for i, dbModel := range dbModels {
		tasks[i] = toTaskEntity(&dbModel)
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domainTask.Task) error {
	t.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]interface{}{
			"title":       t.Title,
			"description": t.Description,
			"priority":    string(t.Priority),
			"due_date":    t.DueDate,
			"image":       t.Image,
			"updated_at":  t.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTask.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, ownerID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Delete(&models.TaskModel{}, "id = ? AND user_id = ?", taskID, ownerID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTask.ErrTaskNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models

func toTaskModel(t *domainTask.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Image:       t.Image,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskEntity(m *models.TaskModel) *domainTask.Task {
	return &domainTask.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    domainTask.Priority(m.Priority),
		DueDate:     m.DueDate,
		Image:       m.Image,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
