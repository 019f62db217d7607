package queries

import (
	"errors"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to one actor.
// Customers see the orders they placed, sellers the orders placed with them,
// admin and system see everything. The scope is part of the query itself, so
// there is no way to ask for someone else's orders.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(customerID, order.RoleCustomer)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing the orders visible to the actor.
// Validates the actor's identity and role.
func NewGetOrdersQuery(actorID kernel.UUID, actorRole order.Role) (GetOrdersQuery, error) {
	getOrdersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		getOrdersQuery.setActorID(actorID),
		getOrdersQuery.setActorRole(actorRole),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return getOrdersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identity whose order list is requested.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role that decides the listing scope.
func (q GetOrdersQuery) ActorRole() order.Role {
	return q.actorRole
}

func (q *GetOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrdersQuery) setActorRole(actorRole order.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// GetOrdersQueryResponse represents one order in a listing.
// Carries the summary attributes order lists are built from; the full detail
// including items and history comes from GetOrderDetailsQuery.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	SellerID        kernel.UUID
	Status          order.Status
	PaymentMethod   order.PaymentMethod
	PaymentStatus   order.PaymentStatus
	Total           kernel.Money
	ContactAttempts int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
