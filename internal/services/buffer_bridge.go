package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/internal/infrastructure/buffer"
	"github.com/tasktrack/backend/usecase"
)

// BufferBridge adapts the buffer processor to the use-case port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferBooking(ctx context.Context, operation string, booking *domain.Booking) error {
	if b.processor == nil || booking == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        itemID(buffer.EntityBooking, booking.ID),
		Entity:    buffer.EntityBooking,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        itemID(buffer.EntityTask, task.ID),
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

// itemID ties a buffered write to its row. Unsaved rows (id 0) get a fresh
// id from normalization instead.
func itemID(entity string, id int64) string {
	if id == 0 {
		return ""
	}
	return entity + ":" + strconv.FormatInt(id, 10)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
