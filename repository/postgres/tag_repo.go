package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type tagRepository struct {
	pool *pgxpool.Pool
}

// NewTagRepository returns a Postgres-backed implementation of TagRepository.
func NewTagRepository(pool *pgxpool.Pool) repository.TagRepository {
	return &tagRepository{pool: pool}
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	const query = `SELECT id, name FROM tag WHERE id = $1`
	return scanTag(r.pool.QueryRow(ctx, query, id))
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	const query = `SELECT id, name FROM tag WHERE name = $1`
	return scanTag(r.pool.QueryRow(ctx, query, name))
}

func (r *tagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	const query = `SELECT id, name FROM tag ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if tag == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `INSERT INTO tag (name) VALUES ($1) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, tag.Name).Scan(&tag.ID); err != nil {
		return nil, mapWriteError(err)
	}
	return tag, nil
}

func (r *tagRepository) Rename(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	const query = `UPDATE tag SET name = $2 WHERE id = $1 RETURNING id, name`
	tag, err := scanTag(r.pool.QueryRow(ctx, query, id, name))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		return nil, mapWriteError(err)
	}
	return tag, nil
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tag WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return mapDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func scanTag(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Tag, error) {
	var tag domain.Tag
	if err := row.Scan(&tag.ID, &tag.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}
