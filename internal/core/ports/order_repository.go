package ports

import (
	"context"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving and mutating order records.
// Role-scoped listing and read-model lookups live in the queries package;
// this port serves the command side only.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its line
	// item snapshots. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists workflow changes to an existing order under an
	// optimistic concurrency guard: the write only applies if the stored
	// status and contact attempt counter still match the values the
	// aggregate was loaded with. A concurrent modification surfaces as a
	// VersionIsInvalidError so the caller can retry against fresh state.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdatePaymentStatus persists the order's payment status only.
	// Payment status is a last-write-wins attribute and carries no
	// concurrency guard.
	UpdatePaymentStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists. Visibility
	// scoping is the caller's concern: command handlers treat orders the
	// acting party may not see exactly like missing ones.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
