package commands

import (
	"context"

	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles the business logic for workflow
// transitions. Loads the order, lets the aggregate enforce the transition
// rules and persists the new state together with its history entries in a
// single transaction.
//
// The handler answers with "order not found" both when the order does not
// exist and when it exists but the actor is not allowed to see it, so a
// caller cannot probe for foreign order IDs.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, adminID, order.RoleAdmin, request)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for workflow
// transitions. Requires a WorkflowUoWFactory for transactional persistence
// of the order and its history.
func NewChangeOrderStatusCommandHandler(uowFactory WorkflowUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Applies the transition through the order aggregate, then stores the order
// with an optimistic concurrency guard and appends the produced history
// entries. A concurrent update surfaces as a VersionIsInvalidError from the
// repository and rolls the transaction back.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := order.NewActor(cmd.ActorID(), cmd.ActorRole())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if !aggregate.VisibleTo(actor) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = aggregate.ApplyTransition(actor, cmd.Request()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	historyRepo := uow.HistoryRepository()
	for _, entry := range aggregate.PendingHistory() {
		if err = historyRepo.Append(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
