package repository

import (
	"context"

	"github.com/tasktrack/backend/domain"
)

// TaskFilter narrows task listings.
type TaskFilter struct {
	Done         *bool
	ImportanceID int64
	NameContains string
	Tags         []string
	Limit        int
	Offset       int
}

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	GetByName(ctx context.Context, name string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error

	AssignTag(ctx context.Context, taskID, tagID int64) error
	UnassignTag(ctx context.Context, taskID, tagID int64) error
	ListTags(ctx context.Context, taskID int64) ([]domain.Tag, error)
}
