package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation of BookingRepository.
func NewBookingRepository(pool *pgxpool.Pool) repository.BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	const query = `
	SELECT id, startdate, enddate, des
	FROM booking
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanBooking(row)
}

// The tag guard must stay NULL-safe: a nil tag slice reaches Postgres as a
// NULL array, and cardinality(NULL) is NULL, which would reject every row.
const bookingListQuery = `
	SELECT id, startdate, enddate, des
	FROM booking
	WHERE ($1 = 0 OR id = $1)
	  AND ($2 = 0 OR startdate > $2)
	  AND ($3 = 0 OR startdate < $3)
	  AND ($4 = 0 OR enddate > $4)
	  AND ($5 = 0 OR enddate < $5)
	  AND ($6 = '' OR des ILIKE '%' || $6 || '%')
	  AND ($7::text[] IS NULL OR cardinality($7::text[]) = 0 OR id IN (
		SELECT bt.bid
		FROM bookingtag bt
		JOIN tag t ON t.id = bt.tgid
		WHERE t.name = ANY ($7)
	  ))
	ORDER BY startdate DESC
	LIMIT $8 OFFSET $9
	`

func (r *bookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx, bookingListQuery,
		filter.ID,
		filter.StartAfter,
		filter.StartBefore,
		filter.EndAfter,
		filter.EndBefore,
		filter.DescriptionContains,
		nonNilTags(filter.Tags),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO booking (startdate, enddate, des)
	VALUES ($1, $2, $3)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query,
		booking.StartDate,
		booking.EndDate,
		booking.Description,
	).Scan(&booking.ID); err != nil {
		return nil, mapWriteError(err)
	}

	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if booking == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE booking
	SET startdate = $2,
		enddate = $3,
		des = $4
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.StartDate,
		booking.EndDate,
		booking.Description,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM booking WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return mapDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) AssignTag(ctx context.Context, bookingID, tagID int64) error {
	const query = `INSERT INTO bookingtag (bid, tgid) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, bookingID, tagID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *bookingRepository) UnassignTag(ctx context.Context, bookingID, tagID int64) error {
	const query = `DELETE FROM bookingtag WHERE bid = $1 AND tgid = $2`
	tag, err := r.pool.Exec(ctx, query, bookingID, tagID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *bookingRepository) ListTags(ctx context.Context, bookingID int64) ([]domain.Tag, error) {
	const query = `
	SELECT t.id, t.name
	FROM tag t
	JOIN bookingtag bt ON t.id = bt.tgid
	WHERE bt.bid = $1
	ORDER BY t.name
	`
	rows, err := r.pool.Query(ctx, query, bookingID)
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

func scanBooking(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Booking, error) {
	var booking domain.Booking
	if err := row.Scan(
		&booking.ID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Description,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}
