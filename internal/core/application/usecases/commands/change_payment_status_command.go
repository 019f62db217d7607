package commands

import (
	"errors"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand represents a request to record a payment state
// change on an order, such as a received prepayment or a settled balance.
// Payment status is an attribute of the order and moves independently of the
// verification workflow.
//
// Example:
//
//	cmd, err := NewChangePaymentStatusCommand(orderID, order.PaymentStatusPartiallyPaid)
//	if err != nil {
//	    return fmt.Errorf("invalid payment status data: %w", err)
//	}
//
//	handler := NewChangePaymentStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment status change failed: %w", err)
//	}
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand creates a command to change an order's
// payment status. Validates the order ID and the target payment status.
func NewChangePaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
) (ChangePaymentStatusCommand, error) {
	changePaymentStatusCommand := ChangePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changePaymentStatusCommand.setOrderID(orderID),
		changePaymentStatusCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return changePaymentStatusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangePaymentStatusCommandIsNotConstructed if validation fails.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the payment status to record.
func (c ChangePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *ChangePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangePaymentStatusCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
