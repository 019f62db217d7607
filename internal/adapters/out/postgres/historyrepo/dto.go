// Package historyrepo provides data transfer objects and mapping functions for
// the order status history. History is an append-only audit trail: rows are
// written when a transition commits and never updated or deleted.
package historyrepo

import (
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents the database structure for persisting status
// transitions. The surrogate key doubles as the read order: ids grow in
// commit order, so "ORDER BY id" replays the trail as it happened.
type HistoryEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:int;not null"`
	ToStatus   int       `gorm:"type:int;not null"`
	ActorRole  int       `gorm:"type:int;not null"`
	Note       string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for history entries.
// Overrides GORM's default naming convention to use "order_status_history".
func (HistoryEntryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts a history entry to its database representation.
func fromDomain(entry order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: int(entry.FromStatus()),
		ToStatus:   int(entry.ToStatus()),
		ActorRole:  int(entry.ActorRole()),
		Note:       entry.Note(),
		OccurredAt: entry.OccurredAt(),
	}
}

// toDomain converts a database DTO back to a history entry.
func toDomain(dto HistoryEntryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.NewHistoryEntry(
		orderID,
		order.Status(dto.FromStatus),
		order.Status(dto.ToStatus),
		order.Role(dto.ActorRole),
		dto.Note,
		dto.OccurredAt,
	)
}
