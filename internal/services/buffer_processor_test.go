package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/internal/infrastructure/buffer"
	"github.com/tasktrack/backend/repository"
)

type stubHealth struct {
	online bool
}

func (s *stubHealth) IsOnline() bool { return s.online }

type replayBookingRepo struct {
	created  []domain.Booking
	failWith error
}

func (r *replayBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (r *replayBookingRepo) List(_ context.Context, _ repository.BookingFilter) ([]domain.Booking, error) {
	return nil, nil
}

func (r *replayBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.created = append(r.created, *booking)
	return booking, nil
}

func (r *replayBookingRepo) Update(_ context.Context, _ *domain.Booking) error { return r.failWith }
func (r *replayBookingRepo) Delete(_ context.Context, _ int64) error           { return r.failWith }

func (r *replayBookingRepo) AssignTag(_ context.Context, _, _ int64) error   { return nil }
func (r *replayBookingRepo) UnassignTag(_ context.Context, _, _ int64) error { return nil }
func (r *replayBookingRepo) ListTags(_ context.Context, _ int64) ([]domain.Tag, error) {
	return nil, nil
}

type replayTaskRepo struct {
	created []domain.Task
}

func (r *replayTaskRepo) GetByID(_ context.Context, _ int64) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (r *replayTaskRepo) GetByName(_ context.Context, _ string) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (r *replayTaskRepo) List(_ context.Context, _ repository.TaskFilter) ([]domain.Task, error) {
	return nil, nil
}

func (r *replayTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.created = append(r.created, *task)
	return task, nil
}

func (r *replayTaskRepo) Update(_ context.Context, _ *domain.Task) error { return nil }
func (r *replayTaskRepo) Delete(_ context.Context, _ int64) error        { return nil }

func (r *replayTaskRepo) AssignTag(_ context.Context, _, _ int64) error   { return nil }
func (r *replayTaskRepo) UnassignTag(_ context.Context, _, _ int64) error { return nil }
func (r *replayTaskRepo) ListTags(_ context.Context, _ int64) ([]domain.Tag, error) {
	return nil, nil
}

func newTestProcessor(t *testing.T, health *stubHealth, bookings *replayBookingRepo, tasks *replayTaskRepo) (*BufferProcessor, *buffer.Store) {
	t.Helper()
	store, err := buffer.Open(filepath.Join(t.TempDir(), "buffer.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bp := NewBufferProcessor(store, health, bookings, tasks, nil, ProcessorConfig{
		Interval:   time.Minute,
		BatchSize:  10,
		MaxRetries: 2,
	})
	return bp, store
}

func bookingItem(t *testing.T, operation string, booking domain.Booking) buffer.Item {
	t.Helper()
	payload, err := json.Marshal(booking)
	require.NoError(t, err)
	return buffer.Item{Entity: buffer.EntityBooking, Operation: operation, Data: payload}
}

func TestDrainReplaysBufferedWrites(t *testing.T) {
	bookings := &replayBookingRepo{}
	tasks := &replayTaskRepo{}
	bp, store := newTestProcessor(t, &stubHealth{online: true}, bookings, tasks)

	require.NoError(t, store.Enqueue(bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})))
	taskPayload, err := json.Marshal(domain.Task{Name: "buffered", ImportanceID: 1})
	require.NoError(t, err)
	require.NoError(t, store.Enqueue(buffer.Item{Entity: buffer.EntityTask, Operation: buffer.OperationCreate, Data: taskPayload}))

	require.NoError(t, bp.Drain(context.Background()))

	require.Len(t, bookings.created, 1)
	assert.Equal(t, int64(100), bookings.created[0].StartDate)
	require.Len(t, tasks.created, 1)
	assert.Equal(t, "buffered", tasks.created[0].Name)
	assert.Zero(t, bp.Size())
}

func TestDrainSkipsWhileOffline(t *testing.T) {
	bookings := &replayBookingRepo{}
	bp, store := newTestProcessor(t, &stubHealth{online: false}, bookings, &replayTaskRepo{})

	require.NoError(t, store.Enqueue(bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})))
	require.NoError(t, bp.Drain(context.Background()))

	assert.Empty(t, bookings.created)
	assert.Equal(t, 1, bp.Size())
}

func TestDrainDropsConstraintRejectedItems(t *testing.T) {
	bookings := &replayBookingRepo{failWith: domain.ErrDuplicateName}
	bp, store := newTestProcessor(t, &stubHealth{online: true}, bookings, &replayTaskRepo{})

	require.NoError(t, store.Enqueue(bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})))
	require.NoError(t, bp.Drain(context.Background()))

	assert.Zero(t, bp.Size(), "constraint rejections must not be retried")
}

func TestDrainRetriesUntilMaxThenDrops(t *testing.T) {
	bookings := &replayBookingRepo{failWith: errors.New("connection refused")}
	bp, store := newTestProcessor(t, &stubHealth{online: true}, bookings, &replayTaskRepo{})

	require.NoError(t, store.Enqueue(bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})))

	// first drain requeues with one retry recorded
	require.NoError(t, bp.Drain(context.Background()))
	assert.Equal(t, 1, bp.Size())

	// second drain hits the retry limit and drops the item
	require.NoError(t, bp.Drain(context.Background()))
	assert.Zero(t, bp.Size())
}

func TestBufferOperationProcessesImmediatelyWhenOnline(t *testing.T) {
	bookings := &replayBookingRepo{}
	bp, _ := newTestProcessor(t, &stubHealth{online: true}, bookings, &replayTaskRepo{})

	item := bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})
	require.NoError(t, bp.BufferOperation(context.Background(), item))

	assert.Len(t, bookings.created, 1)
	assert.Zero(t, bp.Size())
}

func TestBufferOperationEnqueuesWhileOffline(t *testing.T) {
	bookings := &replayBookingRepo{}
	bp, _ := newTestProcessor(t, &stubHealth{online: false}, bookings, &replayTaskRepo{})

	item := bookingItem(t, buffer.OperationCreate, domain.Booking{StartDate: 100})
	require.NoError(t, bp.BufferOperation(context.Background(), item))

	assert.Empty(t, bookings.created)
	assert.Equal(t, 1, bp.Size())
}

func TestBufferBridgeRoutesEntities(t *testing.T) {
	bookings := &replayBookingRepo{}
	tasks := &replayTaskRepo{}
	bp, _ := newTestProcessor(t, &stubHealth{online: false}, bookings, tasks)
	bridge := NewBufferBridge(bp)

	require.NoError(t, bridge.BufferBooking(context.Background(), buffer.OperationCreate, &domain.Booking{ID: 7, StartDate: 100}))
	require.NoError(t, bridge.BufferTask(context.Background(), buffer.OperationUpdate, &domain.Task{ID: 8, Name: "buffered"}))

	assert.Equal(t, 2, bp.Size())

	batch, err := bp.store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	byEntity := map[string]buffer.Item{}
	for _, item := range batch {
		byEntity[item.Entity] = item
	}
	assert.Equal(t, "booking:7", byEntity[buffer.EntityBooking].ID)
	assert.Equal(t, "task:8", byEntity[buffer.EntityTask].ID)
}

func TestBufferBridgeRejectsNilPayload(t *testing.T) {
	bridge := NewBufferBridge(nil)
	err := bridge.BufferBooking(context.Background(), buffer.OperationCreate, &domain.Booking{})
	assert.Error(t, err)
}
