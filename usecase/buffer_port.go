package usecase

import (
	"context"

	"github.com/tasktrack/backend/domain"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline buffer so use cases stay storage-agnostic.
// Only booking and task writes are buffered; vocabulary writes must observe
// their uniqueness constraints synchronously.
type OperationBuffer interface {
	BufferBooking(ctx context.Context, operation string, booking *domain.Booking) error
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
}
