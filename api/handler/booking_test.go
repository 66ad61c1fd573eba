package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
	bookingUC "github.com/tasktrack/backend/usecase/booking"
)

type memoryBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{bookings: make(map[int64]*domain.Booking), nextID: 1}
}

func (r *memoryBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (r *memoryBookingRepo) List(_ context.Context, _ repository.BookingFilter) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = r.nextID
	r.nextID++
	clone := *booking
	r.bookings[booking.ID] = &clone
	return booking, nil
}

func (r *memoryBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *memoryBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryBookingRepo) AssignTag(_ context.Context, _, _ int64) error   { return nil }
func (r *memoryBookingRepo) UnassignTag(_ context.Context, _, _ int64) error { return nil }
func (r *memoryBookingRepo) ListTags(_ context.Context, _ int64) ([]domain.Tag, error) {
	return []domain.Tag{}, nil
}

func newBookingTestHandler(repo *memoryBookingRepo) *BookingHandler {
	return NewBookingHandler(bookingUC.New(repo, nil, nil), nil, nil)
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &decoded))
	return decoded
}

func TestCreateBookingHandler(t *testing.T) {
	h := newBookingTestHandler(newMemoryBookingRepo())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{"startdate":1000,"des":"standup"}`))

	h.CreateBooking(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", envelope["status"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, float64(1000), data["startdate"])
	assert.Equal(t, "standup", data["des"])
}

func TestCreateBookingHandlerRejectsBadJSON(t *testing.T) {
	h := newBookingTestHandler(newMemoryBookingRepo())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{"startdate":`))

	h.CreateBooking(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "INVALID", envelope["code"])
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	h := newBookingTestHandler(newMemoryBookingRepo())

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "42")

	h.GetBooking(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "NOT_FOUND", envelope["code"])
}

func TestGetBookingHandlerRejectsBadID(t *testing.T) {
	h := newBookingTestHandler(newMemoryBookingRepo())

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "abc")

	h.GetBooking(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestGetBookingsHandlerMeta(t *testing.T) {
	repo := newMemoryBookingRepo()
	_, err := repo.Create(context.Background(), &domain.Booking{StartDate: 100})
	require.NoError(t, err)
	h := newBookingTestHandler(repo)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/v1/bookings?limit=10&offset=0")

	h.GetBookings(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	meta := envelope["meta"].(map[string]interface{})
	assert.Equal(t, float64(10), meta["limit"])
	assert.Equal(t, float64(1), meta["count"])
}

func TestFinishBookingHandlerConflict(t *testing.T) {
	repo := newMemoryBookingRepo()
	end := int64(2000)
	_, err := repo.Create(context.Background(), &domain.Booking{StartDate: 100, EndDate: &end})
	require.NoError(t, err)
	h := newBookingTestHandler(repo)

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "1")

	h.FinishBooking(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "CONFLICT", envelope["code"])
}

func TestDeleteBookingHandler(t *testing.T) {
	repo := newMemoryBookingRepo()
	_, err := repo.Create(context.Background(), &domain.Booking{StartDate: 100})
	require.NoError(t, err)
	h := newBookingTestHandler(repo)

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "1")

	h.DeleteBooking(ctx)

	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
	assert.Empty(t, repo.bookings)
}
