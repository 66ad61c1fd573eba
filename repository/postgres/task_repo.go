package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	SELECT id, name, des, done, time, iid
	FROM task
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) GetByName(ctx context.Context, name string) (*domain.Task, error) {
	const query = `
	SELECT id, name, des, done, time, iid
	FROM task
	WHERE name = $1
	`
	row := r.pool.QueryRow(ctx, query, name)
	return scanTask(row)
}

// Same NULL-safe tag guard as bookingListQuery: cardinality(NULL) is NULL
// and would reject every row.
const taskListQuery = `
	SELECT id, name, des, done, time, iid
	FROM task
	WHERE ($1::boolean IS NULL OR done = $1)
	  AND ($2 = 0 OR iid = $2)
	  AND ($3 = '' OR name ILIKE '%' || $3 || '%')
	  AND ($4::text[] IS NULL OR cardinality($4::text[]) = 0 OR id IN (
		SELECT tt.tkid
		FROM tasktag tt
		JOIN tag t ON t.id = tt.tgid
		WHERE t.name = ANY ($4)
	  ))
	ORDER BY id
	LIMIT $5 OFFSET $6
	`

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, taskListQuery,
		filter.Done,
		filter.ImportanceID,
		filter.NameContains,
		nonNilTags(filter.Tags),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO task (name, des, done, time, iid)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query,
		task.Name,
		task.Description,
		task.Done,
		task.Time,
		task.ImportanceID,
	).Scan(&task.ID); err != nil {
		return nil, mapWriteError(err)
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE task
	SET name = $2,
		des = $3,
		done = $4,
		time = $5,
		iid = $6
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		task.ID,
		task.Name,
		task.Description,
		task.Done,
		task.Time,
		task.ImportanceID,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM task WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return mapDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) AssignTag(ctx context.Context, taskID, tagID int64) error {
	const query = `INSERT INTO tasktag (tkid, tgid) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, taskID, tagID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *taskRepository) UnassignTag(ctx context.Context, taskID, tagID int64) error {
	const query = `DELETE FROM tasktag WHERE tkid = $1 AND tgid = $2`
	tag, err := r.pool.Exec(ctx, query, taskID, tagID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *taskRepository) ListTags(ctx context.Context, taskID int64) ([]domain.Tag, error) {
	const query = `
	SELECT t.id, t.name
	FROM tag t
	JOIN tasktag tt ON t.id = tt.tgid
	WHERE tt.tkid = $1
	ORDER BY t.name
	`
	rows, err := r.pool.Query(ctx, query, taskID)
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

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.Done,
		&task.Time,
		&task.ImportanceID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
