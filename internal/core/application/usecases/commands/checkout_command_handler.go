package commands

import (
	"context"
	"sync"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/core/domain/services"
)

// CheckoutResult reports the outcome of checkout for a single seller group.
// Exactly one of OrderID and Err is meaningful: a successful group carries
// the ID of the created order, a failed one carries the reason.
type CheckoutResult struct {
	SellerID kernel.UUID
	OrderID  kernel.UUID
	Err      error
}

// CheckoutCommandHandler handles the business logic for cart checkout.
// Splits the cart into one order per seller and persists each order in its
// own transaction, so a failing seller group never rolls back its siblings.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, splitter)
//	cmd, _ := NewCheckoutCommand(customerID, items, address, order.PaymentMethodOnline)
//
//	results, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//
//	for _, result := range results {
//	    if result.Err != nil {
//	        log.Printf("seller %s failed: %v", result.SellerID, result.Err)
//	    }
//	}
type CheckoutCommandHandler struct {
	uowFactory WorkflowUoWFactory
	splitter   services.CheckoutSplitter
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a WorkflowUoWFactory for per-group transactional persistence and
// a CheckoutSplitter for cart splitting.
func NewCheckoutCommandHandler(
	uowFactory WorkflowUoWFactory,
	splitter services.CheckoutSplitter,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		splitter:   splitter,
	}
}

// Handle processes the checkout command.
// Splits the cart by seller, then persists each produced order together with
// its submission history concurrently, one transaction per seller group.
// Returns one result per group in cart order. The error return covers only
// request-level failures; group-level failures land in the results.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := order.NewActor(cmd.CustomerID(), order.RoleCustomer)
	if err != nil {
		return nil, err
	}

	outcomes, err := h.splitter.Split(customer, cmd.Items(), cmd.DeliveryAddress(), cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	results := make([]CheckoutResult, len(outcomes))

	var wg sync.WaitGroup
	for i, outcome := range outcomes {
		results[i] = CheckoutResult{SellerID: outcome.SellerID, Err: outcome.Err}
		if outcome.Err != nil {
			continue
		}

		wg.Add(1)
		go func(i int, aggregate *order.Order) {
			defer wg.Done()

			if persistErr := h.persistOrder(ctx, aggregate); persistErr != nil {
				results[i].Err = persistErr
				return
			}

			results[i].OrderID = aggregate.ID()
		}(i, outcome.Order)
	}
	wg.Wait()

	return results, nil
}

func (h *CheckoutCommandHandler) persistOrder(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	historyRepo := uow.HistoryRepository()
	for _, entry := range aggregate.PendingHistory() {
		if err := historyRepo.Append(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
