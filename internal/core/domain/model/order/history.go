package order

import (
	"errors"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when attempting to use an
// improperly initialized HistoryEntry.
var ErrHistoryEntryIsNotConstructed = errs.NewValueIsRequiredError(
	"history entry must be created via NewHistoryEntry constructor")

// HistoryEntry is one append-only audit record of a status transition.
// Entries are created on every successful transition, persisted atomically
// with the status write, and never mutated or deleted afterwards.
//
// The most recent entry's ToStatus always equals the order's current status.
type HistoryEntry struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	fromStatus Status
	toStatus   Status
	actorRole  Role
	note       string
	occurredAt time.Time
	guard      guard.ConstructorGuard
}

// NewHistoryEntry creates a HistoryEntry with validation.
// The note may be empty; every other field is required.
func NewHistoryEntry(orderID kernel.UUID, from Status, to Status, actorRole Role, note string, occurredAt time.Time) (HistoryEntry, error) {
	entry := HistoryEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setOrderID(orderID),
		entry.setStatuses(from, to),
		entry.setActorRole(actorRole),
		entry.setOccurredAt(occurredAt),
	); err != nil {
		return HistoryEntry{}, err
	}

	entry.note = note
	return entry, nil
}

// Validate checks if the HistoryEntry was properly constructed using NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// OrderID returns the identifier of the order this entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// FromStatus returns the status the order left.
func (h HistoryEntry) FromStatus() Status {
	return h.fromStatus
}

// ToStatus returns the status the order entered.
func (h HistoryEntry) ToStatus() Status {
	return h.toStatus
}

// ActorRole returns the role that drove the transition.
func (h HistoryEntry) ActorRole() Role {
	return h.actorRole
}

// Note returns the free-text note recorded with the transition, if any.
func (h HistoryEntry) Note() string {
	return h.note
}

// OccurredAt returns when the transition happened.
func (h HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}

func (h *HistoryEntry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	h.orderID = orderID
	return nil
}

func (h *HistoryEntry) setStatuses(from Status, to Status) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	h.fromStatus = from
	h.toStatus = to
	return nil
}

func (h *HistoryEntry) setActorRole(actorRole Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	h.actorRole = actorRole
	return nil
}

func (h *HistoryEntry) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	h.occurredAt = occurredAt
	return nil
}
