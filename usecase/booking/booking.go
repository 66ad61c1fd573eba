package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
	"github.com/tasktrack/backend/usecase"
)

type UseCase struct {
	bookings repository.BookingRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
	now      func() time.Time
}

func New(bookings repository.BookingRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		bookings: bookings,
		buffer:   buffer,
		logger:   logger,
		now:      time.Now,
	}
}

// UpdateParams carries the optional fields of a partial booking update.
// Nil fields are left untouched.
type UpdateParams struct {
	StartDate   *int64
	EndDate     *int64
	Description *string
}

func (p UpdateParams) empty() bool {
	return p.StartDate == nil && p.EndDate == nil && p.Description == nil
}

func (uc *UseCase) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]domain.Booking, error) {
	return uc.bookings.List(ctx, filter)
}

func (uc *UseCase) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return uc.bookings.GetByID(ctx, id)
}

// CreateBooking stores a new booking. A zero start date defaults to now.
func (uc *UseCase) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil {
		return nil, domain.ErrInvalidPayload
	}
	if booking.StartDate == 0 {
		booking.StartDate = uc.now().UnixMilli()
	}
	if booking.EndDate != nil && *booking.EndDate < booking.StartDate {
		return nil, domain.NewError(domain.ErrCodeInvalid, "enddate precedes startdate")
	}

	created, err := uc.bookings.Create(ctx, booking)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, booking, err) {
			return booking, nil
		}
		return nil, err
	}
	return created, nil
}

// UpdateBooking applies a partial update. An update with no fields set is a
// no-op and returns the stored state.
func (uc *UseCase) UpdateBooking(ctx context.Context, id int64, params UpdateParams) (*domain.Booking, error) {
	booking, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.empty() {
		return booking, nil
	}

	if params.StartDate != nil {
		booking.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		booking.EndDate = params.EndDate
	}
	if params.Description != nil {
		booking.Description = *params.Description
	}

	if err := uc.bookings.Update(ctx, booking); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, booking, err) {
			return booking, nil
		}
		return nil, err
	}
	return booking, nil
}

// FinishBooking closes an open booking at the current time.
func (uc *UseCase) FinishBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsOpen() {
		return nil, domain.NewError(domain.ErrCodeConflict, "booking already finished")
	}

	booking.Finish(uc.now())
	if err := uc.bookings.Update(ctx, booking); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, booking, err) {
			return booking, nil
		}
		return nil, err
	}
	return booking, nil
}

func (uc *UseCase) DeleteBooking(ctx context.Context, id int64) error {
	if err := uc.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return err
		}
		booking := &domain.Booking{ID: id}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, booking, err) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) AssignTag(ctx context.Context, bookingID, tagID int64) error {
	return uc.bookings.AssignTag(ctx, bookingID, tagID)
}

func (uc *UseCase) UnassignTag(ctx context.Context, bookingID, tagID int64) error {
	return uc.bookings.UnassignTag(ctx, bookingID, tagID)
}

func (uc *UseCase) AssignedTags(ctx context.Context, bookingID int64) ([]domain.Tag, error) {
	if _, err := uc.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return uc.bookings.ListTags(ctx, bookingID)
}

// shouldBuffer persists the failed operation for later replay, but only for
// infrastructure failures. Constraint violations would fail again on replay.
func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, booking *domain.Booking, cause error) bool {
	if uc.buffer == nil {
		return false
	}
	var dErr *domain.Error
	if errors.As(cause, &dErr) {
		return false
	}
	if err := uc.buffer.BufferBooking(ctx, operation, booking); err != nil {
		uc.logger.Error("failed to buffer booking operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("booking operation buffered", zap.String("operation", operation), zap.Error(cause))
	return true
}
