package user

import (
	"context"
	"errors"
	"fmt"

	domainTask "taskboard/internal/domain/task"
	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/logger"
	appErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the user-resource use cases. Every operation requires
// the caller's identity to match the target identifier; a mismatch is
// answered exactly like a missing user so nothing about other accounts
// leaks.
type Service struct {
	userRepo domainUser.Repository
	taskRepo domainTask.Repository
	images   domainTask.ImageStore
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository, taskRepo domainTask.Repository, images domainTask.ImageStore) *Service {
	return &Service{
		userRepo: userRepo,
		taskRepo: taskRepo,
		images:   images,
	}
}

func (s *Service) GetUser(ctx context.Context, callerID, targetID uuid.UUID) (*UserResponse, error) {
	if callerID != targetID {
		return nil, domainUser.ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *Service) UpdateUser(ctx context.Context, callerID, targetID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if callerID != targetID {
		return nil, domainUser.ErrUserNotFound
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError(err)
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var level *domainUser.ExperienceLevel
	if req.ExperienceLevel != nil {
		l := domainUser.ExperienceLevel(*req.ExperienceLevel)
		level = &l
	}

	user.Name = req.Name
	user.CountryCode = req.CountryCode
	user.Phone = req.Phone
	user.YearsOfExperience = req.YearsOfExperience
	user.ExperienceLevel = level
	user.Address = req.Address
	user.PasswordHashed = hashedPassword

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "user_updated"),
	)

	return ToUserResponse(user), nil
}

// DeleteUser removes the account and everything it owns: each owned
// task's image file is deleted first (already-absent files tolerated),
// then the user row, which cascades over task and refresh-token rows.
func (s *Service) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		return domainUser.ErrUserNotFound
	}

	tasks, err := s.taskRepo.ListByOwner(ctx, targetID)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if t.Image == nil {
			continue
		}
		if err := s.images.Delete(ctx, *t.Image); err != nil {
			if errors.Is(err, domainTask.ErrImageNotFound) {
				logger.Warn("Image file already absent",
					zap.String("filename", *t.Image),
				)
				continue
			}
			return fmt.Errorf("failed to delete image: %w", err)
		}
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}

	logger.Info("User deleted",
		zap.String("user_id", targetID.String()),
		zap.String("event", "user_deleted"),
	)

	return nil
}
