package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type importanceRepository struct {
	pool *pgxpool.Pool
}

// NewImportanceRepository returns a Postgres-backed implementation of ImportanceRepository.
func NewImportanceRepository(pool *pgxpool.Pool) repository.ImportanceRepository {
	return &importanceRepository{pool: pool}
}

func (r *importanceRepository) GetByID(ctx context.Context, id int64) (*domain.Importance, error) {
	const query = `SELECT id, name, val FROM importance WHERE id = $1`
	return scanImportance(r.pool.QueryRow(ctx, query, id))
}

func (r *importanceRepository) GetByName(ctx context.Context, name string) (*domain.Importance, error) {
	const query = `SELECT id, name, val FROM importance WHERE name = $1`
	return scanImportance(r.pool.QueryRow(ctx, query, name))
}

func (r *importanceRepository) GetByVal(ctx context.Context, val int32) (*domain.Importance, error) {
	const query = `SELECT id, name, val FROM importance WHERE val = $1`
	return scanImportance(r.pool.QueryRow(ctx, query, val))
}

func (r *importanceRepository) List(ctx context.Context) ([]domain.Importance, error) {
	const query = `SELECT id, name, val FROM importance ORDER BY val`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []domain.Importance
	for rows.Next() {
		var level domain.Importance
		if err := rows.Scan(&level.ID, &level.Name, &level.Val); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

func (r *importanceRepository) Create(ctx context.Context, importance *domain.Importance) (*domain.Importance, error) {
	if importance == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `INSERT INTO importance (name, val) VALUES ($1, $2) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, importance.Name, importance.Val).Scan(&importance.ID); err != nil {
		return nil, mapWriteError(err)
	}
	return importance, nil
}

func (r *importanceRepository) Update(ctx context.Context, importance *domain.Importance) error {
	if importance == nil {
		return domain.ErrInvalidPayload
	}

	const query = `UPDATE importance SET name = $2, val = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, importance.ID, importance.Name, importance.Val)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImportanceNotFound
	}
	return nil
}

func (r *importanceRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM importance WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return mapDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImportanceNotFound
	}
	return nil
}

func scanImportance(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Importance, error) {
	var level domain.Importance
	if err := row.Scan(&level.ID, &level.Name, &level.Val); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImportanceNotFound
		}
		return nil, err
	}
	return &level, nil
}
