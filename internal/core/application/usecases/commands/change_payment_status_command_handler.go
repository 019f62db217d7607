package commands

import (
	"context"
)

// ChangePaymentStatusCommandHandler handles the business logic for payment
// status changes. Payment state moves independently of the verification
// workflow and writes without an optimistic concurrency guard, so a payment
// update never conflicts with an in-flight transition.
//
// Example:
//
//	handler := NewChangePaymentStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangePaymentStatusCommand(orderID, order.PaymentStatusPaid)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment status change failed: %w", err)
//	}
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePaymentStatusCommandHandler creates a handler for payment status
// changes. Requires an OrderUoWFactory for transactional persistence.
func NewChangePaymentStatusCommandHandler(uowFactory OrderUoWFactory) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status change command.
// Loads the order, applies the payment status through the aggregate and
// persists the attribute change.
func (h *ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = orderRepo.UpdatePaymentStatus(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
