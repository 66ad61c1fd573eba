package repository

import (
	"context"

	"github.com/tasktrack/backend/domain"
)

type TagRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}
