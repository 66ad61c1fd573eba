package repository

import (
	"context"

	"github.com/tasktrack/backend/domain"
)

type ImportanceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Importance, error)
	GetByName(ctx context.Context, name string) (*domain.Importance, error)
	GetByVal(ctx context.Context, val int32) (*domain.Importance, error)
	// List returns all levels ordered by val ascending.
	List(ctx context.Context) ([]domain.Importance, error)
	Create(ctx context.Context, importance *domain.Importance) (*domain.Importance, error)
	Update(ctx context.Context, importance *domain.Importance) error
	Delete(ctx context.Context, id int64) error
}
