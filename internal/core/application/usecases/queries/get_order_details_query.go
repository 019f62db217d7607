package queries

import (
	"errors"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves the full detail of one order, including its
// line items, delivery address and status history. The actor's scope is part
// of the lookup itself: an order outside the actor's scope produces the same
// "order not found" outcome as an order that does not exist, so callers cannot
// probe foreign order IDs.
//
// Example:
//
//	query, _ := NewGetOrderDetailsQuery(orderID, customerID, order.RoleCustomer)
//	handler := NewGetOrderDetailsQueryHandler(db)
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", details.ID, details.Status)
type GetOrderDetailsQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order's detail as seen by
// the actor. Validates the order ID and the actor's identity and role.
func NewGetOrderDetailsQuery(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole order.Role,
) (GetOrderDetailsQuery, error) {
	getOrderDetailsQuery := GetOrderDetailsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		getOrderDetailsQuery.setOrderID(orderID),
		getOrderDetailsQuery.setActorID(actorID),
		getOrderDetailsQuery.setActorRole(actorRole),
	); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return getOrderDetailsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the identity requesting the order.
func (q GetOrderDetailsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role that decides the lookup scope.
func (q GetOrderDetailsQuery) ActorRole() order.Role {
	return q.actorRole
}

func (q *GetOrderDetailsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderDetailsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrderDetailsQuery) setActorRole(actorRole order.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// GetOrderDetailsQueryResponse is the full read model of one order.
type GetOrderDetailsQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	SellerID         kernel.UUID
	Items            []OrderItemResponse
	DeliveryAddress  order.Address
	Subtotal         kernel.Money
	DeliveryCharges  kernel.Money
	Total            kernel.Money
	PaymentMethod    order.PaymentMethod
	PaymentStatus    order.PaymentStatus
	PrepaymentAmount *kernel.Money
	Status           order.Status
	ContactAttempts  int
	SellerResponse   string
	BuyerResponse    string
	RejectReason     string
	Note             string
	History          []HistoryEntryResponse
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItemResponse is one purchased product position as captured at
// order-creation time.
type OrderItemResponse struct {
	ProductID string
	Title     string
	Quantity  int
	Price     kernel.Money
	Unit      string
}

// HistoryEntryResponse is one recorded status transition.
type HistoryEntryResponse struct {
	FromStatus order.Status
	ToStatus   order.Status
	ActorRole  order.Role
	Note       string
	OccurredAt time.Time
}
