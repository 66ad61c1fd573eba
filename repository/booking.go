package repository

import (
	"context"

	"github.com/tasktrack/backend/domain"
)

// BookingFilter narrows booking listings. Zero values mean "not filtered";
// timestamp bounds are exclusive.
type BookingFilter struct {
	ID                  int64
	StartAfter          int64
	StartBefore         int64
	EndAfter            int64
	EndBefore           int64
	DescriptionContains string
	Tags                []string
	Limit               int
	Offset              int
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error

	AssignTag(ctx context.Context, bookingID, tagID int64) error
	UnassignTag(ctx context.Context, bookingID, tagID int64) error
	ListTags(ctx context.Context, bookingID int64) ([]domain.Tag, error)
}
