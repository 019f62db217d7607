package queries

import (
	"context"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order summaries from the database.
// The listing is scoped by the actor's role: customers get their own orders,
// sellers the orders placed with them, admin and system the full set. Orders
// outside the actor's scope are simply absent from the result.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(sellerID, order.RoleSeller)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s\n", o.ID, o.Status)
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the orders visible to the actor.
// Results are sorted newest first, with the order ID as a tie breaker so
// the listing is stable across calls.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			id,
			customer_id,
			seller_id,
			status,
			payment_method,
			payment_status,
			total,
			contact_attempts,
			created_at,
			updated_at
		FROM orders
	`
	args := make([]any, 0, 1)

	switch query.ActorRole() {
	case order.RoleCustomer:
		querySQL += ` WHERE customer_id = ?`
		args = append(args, query.ActorID().Bytes())
	case order.RoleSeller:
		querySQL += ` WHERE seller_id = ?`
		args = append(args, query.ActorID().Bytes())
	case order.RoleAdmin, order.RoleSystem:
		// Full listing.
	}

	querySQL += ` ORDER BY created_at DESC, id`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, customerID, sellerID uuid.UUID
		var status, paymentMethod, paymentStatus, contactAttempts int
		var total decimal.Decimal
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&sellerID,
			&status,
			&paymentMethod,
			&paymentStatus,
			&total,
			&contactAttempts,
			&createdAt,
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

		orderTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		orderResp.Total = orderTotal

		orderResp.Status = order.Status(status)
		orderResp.PaymentMethod = order.PaymentMethod(paymentMethod)
		orderResp.PaymentStatus = order.PaymentStatus(paymentStatus)
		orderResp.ContactAttempts = contactAttempts
		orderResp.CreatedAt = createdAt
		orderResp.UpdatedAt = updatedAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
