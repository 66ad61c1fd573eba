package task

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
	"github.com/tasktrack/backend/usecase"
)

type UseCase struct {
	tasks      repository.TaskRepository
	importance repository.ImportanceRepository
	buffer     usecase.OperationBuffer
	logger     *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	importance repository.ImportanceRepository,
	buffer usecase.OperationBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:      tasks,
		importance: importance,
		buffer:     buffer,
		logger:     logger,
	}
}

// UpdateParams carries the optional fields of a partial task update.
type UpdateParams struct {
	Name         *string
	Description  *string
	Done         *bool
	ImportanceID *int64
}

func (p UpdateParams) empty() bool {
	return p.Name == nil && p.Description == nil && p.Done == nil && p.ImportanceID == nil
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) GetTaskByName(ctx context.Context, name string) (*domain.Task, error) {
	return uc.tasks.GetByName(ctx, name)
}

// CreateTask stores a new task after checking the referenced importance
// level exists. The foreign key is the final arbiter; the lookup exists to
// turn the common mistake into a descriptive error.
func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := validateName(task.Name); err != nil {
		return nil, err
	}
	if _, err := uc.importance.GetByID(ctx, task.ImportanceID); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		// importance lookup unavailable, let the insert decide
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task, err) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

// UpdateTask applies a partial update. An update with no fields set is a
// no-op and returns the stored state.
func (uc *UseCase) UpdateTask(ctx context.Context, id int64, params UpdateParams) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.empty() {
		return task, nil
	}

	if params.Name != nil {
		if err := validateName(*params.Name); err != nil {
			return nil, err
		}
		task.Name = *params.Name
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Done != nil {
		task.Done = *params.Done
	}
	if params.ImportanceID != nil {
		task.ImportanceID = *params.ImportanceID
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task, err) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

// SetDone flips the completion flag.
func (uc *UseCase) SetDone(ctx context.Context, id int64, done bool) (*domain.Task, error) {
	return uc.UpdateTask(ctx, id, UpdateParams{Done: &done})
}

// AddTime accumulates tracked milliseconds onto the task.
func (uc *UseCase) AddTime(ctx context.Context, id int64, delta int64) (*domain.Task, error) {
	if delta <= 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "time delta must be positive")
	}

	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.AddTime(delta)

	if err := uc.tasks.Update(ctx, task); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task, err) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id int64) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		task := &domain.Task{ID: id}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task, err) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) AssignTag(ctx context.Context, taskID, tagID int64) error {
	return uc.tasks.AssignTag(ctx, taskID, tagID)
}

func (uc *UseCase) UnassignTag(ctx context.Context, taskID, tagID int64) error {
	return uc.tasks.UnassignTag(ctx, taskID, tagID)
}

func (uc *UseCase) AssignedTags(ctx context.Context, taskID int64) ([]domain.Tag, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return uc.tasks.ListTags(ctx, taskID)
}

func validateName(name string) error {
	if name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "task name must not be empty")
	}
	if len(name) > domain.MaxNameLen {
		return domain.NewError(domain.ErrCodeInvalid, "task name exceeds 30 characters")
	}
	return nil
}

// shouldBuffer persists the failed operation for later replay, but only for
// infrastructure failures. Constraint violations would fail again on replay.
func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task, cause error) bool {
	if uc.buffer == nil {
		return false
	}
	var dErr *domain.Error
	if errors.As(cause, &dErr) {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation), zap.Error(cause))
	return true
}
