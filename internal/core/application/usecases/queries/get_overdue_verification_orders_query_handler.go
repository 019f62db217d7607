package queries

import (
	"context"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueVerificationOrdersQueryHandler retrieves verification-phase orders
// that nobody has touched for too long. The verification phase covers every
// status between checkout and the buyer's final answer.
//
// Example:
//
//	handler := NewGetOverdueVerificationOrdersQueryHandler(db)
//	query, _ := NewGetOverdueVerificationOrdersQuery(4 * time.Hour)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get overdue orders: %v", err)
//	    return err
//	}
type GetOverdueVerificationOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueVerificationOrdersQueryHandler creates a handler for overdue
// verification queries. Requires a GORM database connection.
func NewGetOverdueVerificationOrdersQueryHandler(db *gorm.DB) GetOverdueVerificationOrdersQueryHandler {
	return GetOverdueVerificationOrdersQueryHandler{db: db}
}

// Handle executes the query and returns orders idle in a verification status
// for at least the query's age, oldest first.
func (h GetOverdueVerificationOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueVerificationOrdersQuery,
) ([]GetOverdueVerificationOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Age())
	overdue := make([]GetOverdueVerificationOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			seller_id,
			status,
			contact_attempts,
			updated_at
		FROM orders
		WHERE status IN (?, ?, ?, ?)
		AND updated_at < ?
		ORDER BY updated_at
	`,
		order.PendingVerification,
		order.SellerContacted,
		order.SellerAccepted,
		order.BuyerContacted,
		cutoff,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOverdueVerificationOrdersQueryResponse
		var id, customerID, sellerID uuid.UUID
		var status, contactAttempts int
		var updatedAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&sellerID,
			&status,
			&contactAttempts,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = orderCustomerID

		orderSellerID, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.SellerID = orderSellerID

		orderResp.Status = order.Status(status)
		orderResp.ContactAttempts = contactAttempts
		orderResp.UpdatedAt = updatedAt

		overdue = append(overdue, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
