package queries

import (
	"context"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves one order's full read model from the
// database. The actor's scope is folded into the lookup, so an order that
// exists but belongs to someone else yields the same "order not found" error
// as a nonexistent one.
//
// Example:
//
//	handler := NewGetOrderDetailsQueryHandler(db)
//	query, _ := NewGetOrderDetailsQuery(orderID, actorID, order.RoleAdmin)
//
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query and returns the order detail with line items and
// status history. Returns an object-not-found error when no order matches the
// ID within the actor's scope.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	querySQL := `
		SELECT
			id,
			customer_id,
			seller_id,
			address_full_name,
			address_phone,
			address_line1,
			address_line2,
			address_city,
			address_postal_code,
			subtotal,
			delivery_charges,
			total,
			payment_method,
			payment_status,
			prepayment_amount,
			status,
			contact_attempts,
			seller_response,
			buyer_response,
			reject_reason,
			note,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}

	switch query.ActorRole() {
	case order.RoleCustomer:
		querySQL += ` AND customer_id = ?`
		args = append(args, query.ActorID().Bytes())
	case order.RoleSeller:
		querySQL += ` AND seller_id = ?`
		args = append(args, query.ActorID().Bytes())
	case order.RoleAdmin, order.RoleSystem:
		// Full scope.
	}

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}
		return GetOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var details GetOrderDetailsQueryResponse
	var id, customerID, sellerID uuid.UUID
	var fullName, phone, line1, line2, city, postalCode string
	var subtotal, deliveryCharges, total decimal.Decimal
	var prepayment decimal.NullDecimal
	var paymentMethod, paymentStatus, status, contactAttempts int
	var createdAt, updatedAt time.Time

	err = rows.Scan(
		&id,
		&customerID,
		&sellerID,
		&fullName,
		&phone,
		&line1,
		&line2,
		&city,
		&postalCode,
		&subtotal,
		&deliveryCharges,
		&total,
		&paymentMethod,
		&paymentStatus,
		&prepayment,
		&status,
		&contactAttempts,
		&details.SellerResponse,
		&details.BuyerResponse,
		&details.RejectReason,
		&details.Note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderDetailsQueryResponse{}, idErr
	}
	details.ID = orderID

	orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
	if idErr != nil {
		return GetOrderDetailsQueryResponse{}, idErr
	}
	details.CustomerID = orderCustomerID

	orderSellerID, idErr := kernel.UUIDFromBytes(sellerID[:])
	if idErr != nil {
		return GetOrderDetailsQueryResponse{}, idErr
	}
	details.SellerID = orderSellerID

	address, addrErr := order.NewAddress(fullName, phone, line1, line2, city, postalCode)
	if addrErr != nil {
		return GetOrderDetailsQueryResponse{}, addrErr
	}
	details.DeliveryAddress = address

	orderSubtotal, moneyErr := kernel.NewMoney(subtotal)
	if moneyErr != nil {
		return GetOrderDetailsQueryResponse{}, moneyErr
	}
	details.Subtotal = orderSubtotal

	orderDeliveryCharges, moneyErr := kernel.NewMoney(deliveryCharges)
	if moneyErr != nil {
		return GetOrderDetailsQueryResponse{}, moneyErr
	}
	details.DeliveryCharges = orderDeliveryCharges

	orderTotal, moneyErr := kernel.NewMoney(total)
	if moneyErr != nil {
		return GetOrderDetailsQueryResponse{}, moneyErr
	}
	details.Total = orderTotal

	if prepayment.Valid {
		prepaymentAmount, prepErr := kernel.NewMoney(prepayment.Decimal)
		if prepErr != nil {
			return GetOrderDetailsQueryResponse{}, prepErr
		}
		details.PrepaymentAmount = &prepaymentAmount
	}

	details.PaymentMethod = order.PaymentMethod(paymentMethod)
	details.PaymentStatus = order.PaymentStatus(paymentStatus)
	details.Status = order.Status(status)
	details.ContactAttempts = contactAttempts
	details.CreatedAt = createdAt
	details.UpdatedAt = updatedAt

	if err = rows.Close(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	details.Items = items

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	details.History = history

	return details, nil
}

// loadItems retrieves the order's line items in insertion order.
func (h GetOrderDetailsQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			title,
			quantity,
			price,
			unit
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var price decimal.Decimal

		err = rows.Scan(
			&item.ProductID,
			&item.Title,
			&item.Quantity,
			&price,
			&item.Unit,
		)
		if err != nil {
			return nil, err
		}

		itemPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = itemPrice

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// loadHistory retrieves the order's status transitions in the order they
// were recorded.
func (h GetOrderDetailsQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	history := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_role,
			note,
			occurred_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		var fromStatus, toStatus, actorRole int

		err = rows.Scan(
			&fromStatus,
			&toStatus,
			&actorRole,
			&entry.Note,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		entry.FromStatus = order.Status(fromStatus)
		entry.ToStatus = order.Status(toStatus)
		entry.ActorRole = order.Role(actorRole)

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
