package ports

import (
	"context"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
)

// HistoryRepository defines the persistence contract for the order transition
// log. The log is append-only: entries are never updated or deleted, and this
// interface deliberately offers no way to do either.
type HistoryRepository interface {
	// Append persists one transition entry. Command handlers call it for
	// every pending history entry inside the same unit of work that writes
	// the order row, so the log and the order change atomically.
	Append(ctx context.Context, entry order.HistoryEntry) error

	// ListByOrder returns the full transition log of one order in insertion
	// order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
