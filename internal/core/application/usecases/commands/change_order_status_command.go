package commands

import (
	"errors"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order through the
// verification and fulfillment workflow on behalf of a specific actor.
// The order aggregate decides whether the actor and the transition are
// legitimate; the command only carries validated input.
//
// Example:
//
//	request := order.TransitionRequest{
//	    To:             order.SellerContacted,
//	    SellerResponse: "",
//	}
//	cmd, err := NewChangeOrderStatusCommand(orderID, adminID, order.RoleAdmin, request)
//	if err != nil {
//	    return fmt.Errorf("invalid status change data: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole order.Role
	request   order.TransitionRequest

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates identifiers, the actor role and the transition payload. Whether
// the transition itself is allowed is decided later by the order aggregate.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole order.Role,
	request order.TransitionRequest,
) (ChangeOrderStatusCommand, error) {
	changeOrderStatusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changeOrderStatusCommand.setOrderID(orderID),
		changeOrderStatusCommand.setActorID(actorID),
		changeOrderStatusCommand.setActorRole(actorRole),
		changeOrderStatusCommand.setRequest(request),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return changeOrderStatusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identity of the actor requesting the transition.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the actor requesting the transition.
func (c ChangeOrderStatusCommand) ActorRole() order.Role {
	return c.actorRole
}

// Request returns the transition payload.
func (c ChangeOrderStatusCommand) Request() order.TransitionRequest {
	return c.request
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setActorRole(actorRole order.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *ChangeOrderStatusCommand) setRequest(request order.TransitionRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	c.request = request
	return nil
}
