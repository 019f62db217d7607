package services

import (
	"errors"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"
)

// CartItem is one position of a customer's cart as submitted at checkout.
// Items from different sellers may share a cart; the SellerID tag is what the
// splitter groups by. Title, price and unit are the catalog snapshot taken by
// the caller at checkout time.
type CartItem struct {
	SellerID  kernel.UUID
	ProductID string
	Title     string
	Quantity  int
	Price     kernel.Money
	Unit      string
}

// SplitOutcome reports what happened to one seller group of a checkout.
// Exactly one of Order and Err is set. Groups fail independently: a failed
// group never prevents sibling groups from producing orders.
type SplitOutcome struct {
	SellerID kernel.UUID
	Order    *order.Order
	Err      error
}

// CheckoutSplitter is a domain service that turns a mixed-seller cart into
// independent per-seller orders ready for verification.
//
// Key responsibilities:
//   - Grouping cart items by seller while preserving submission order
//   - Building one order per seller group with the flat delivery charge
//   - Submitting each order for verification on behalf of the customer
//
// Business rules:
//   - Only a customer may check out
//   - Sellers appear in the result in order of first appearance in the cart
//   - Each seller group succeeds or fails on its own
//   - Every produced order starts its history with the submission transition
//
// Example usage:
//
//	splitter, _ := services.NewCheckoutSplitter(deliveryCharges)
//	outcomes, err := splitter.Split(customer, cartItems, address, order.PaymentMethodCOD)
//	if err != nil {
//	    // The request as a whole was malformed
//	    return
//	}
//	for _, outcome := range outcomes {
//	    if outcome.Err != nil {
//	        // Report this seller group as failed, keep the rest
//	        continue
//	    }
//	    // Persist outcome.Order
//	}
type CheckoutSplitter struct {
	deliveryCharges kernel.Money
}

// NewCheckoutSplitter creates a CheckoutSplitter applying the given flat
// delivery charge to every seller order it produces.
//
// Returns:
//   - CheckoutSplitter: A new instance ready for checkout operations
//   - error: Validation error if the delivery charge is improperly constructed
func NewCheckoutSplitter(deliveryCharges kernel.Money) (CheckoutSplitter, error) {
	if err := deliveryCharges.Validate(); err != nil {
		return CheckoutSplitter{}, err
	}
	return CheckoutSplitter{deliveryCharges: deliveryCharges}, nil
}

// Split validates the checkout request, groups the cart by seller and builds
// one submitted order per group.
//
// Parameters:
//   - customer: The buyer checking out (must act under the customer role)
//   - items: The cart positions (at least one, each tagged with a valid seller)
//   - deliveryAddress: Where every produced order will be delivered
//   - paymentMethod: How the customer chose to pay, applied to every order
//
// Returns:
//   - []SplitOutcome: One outcome per seller group, in order of first appearance
//   - error: Request-level validation error that dooms every group alike
//
// A request-level error (invalid actor, empty cart, bad address or payment
// method) returns no outcomes at all. Once grouping succeeds, failures are
// per group: an invalid quantity in one seller's items marks only that
// seller's outcome as failed.
func (s CheckoutSplitter) Split(
	customer order.Actor,
	items []CartItem,
	deliveryAddress order.Address,
	paymentMethod order.PaymentMethod,
) ([]SplitOutcome, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if customer.Role() != order.RoleCustomer {
		return nil, errs.NewValueIsInvalidErrorWithCause("actor is invalid",
			errors.New("checkout requires the customer role"))
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}

	groups, err := s.groupBySeller(items)
	if err != nil {
		return nil, err
	}

	outcomes := make([]SplitOutcome, 0, len(groups))
	for _, group := range groups {
		built, buildErr := s.buildOrder(customer, group, deliveryAddress, paymentMethod)
		outcomes = append(outcomes, SplitOutcome{
			SellerID: group.sellerID,
			Order:    built,
			Err:      buildErr,
		})
	}

	return outcomes, nil
}

// sellerGroup collects the cart positions belonging to one seller.
type sellerGroup struct {
	sellerID kernel.UUID
	items    []CartItem
}

// groupBySeller partitions the cart by seller. Sellers keep the order of
// their first appearance and items keep their order within each group, so
// the same cart always produces the same orders.
func (s CheckoutSplitter) groupBySeller(items []CartItem) ([]sellerGroup, error) {
	groups := make([]sellerGroup, 0)
	indexBySeller := make(map[string]int)

	for _, item := range items {
		if err := item.SellerID.Validate(); err != nil {
			return nil, err
		}

		key := item.SellerID.String()
		idx, ok := indexBySeller[key]
		if !ok {
			idx = len(groups)
			indexBySeller[key] = idx
			groups = append(groups, sellerGroup{sellerID: item.SellerID})
		}
		groups[idx].items = append(groups[idx].items, item)
	}

	return groups, nil
}

// buildOrder turns one seller group into an order submitted for verification.
// The first history entry of every checkout-produced order is the customer's
// submission transition.
func (s CheckoutSplitter) buildOrder(
	customer order.Actor,
	group sellerGroup,
	deliveryAddress order.Address,
	paymentMethod order.PaymentMethod,
) (*order.Order, error) {
	lineItems := make([]order.LineItem, 0, len(group.items))
	for _, item := range group.items {
		lineItem, err := order.NewLineItem(item.ProductID, item.Title, item.Quantity, item.Price, item.Unit)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	built, err := order.NewOrder(
		kernel.NewUUID(),
		customer.ID(),
		group.sellerID,
		lineItems,
		deliveryAddress,
		s.deliveryCharges,
		paymentMethod,
	)
	if err != nil {
		return nil, err
	}

	if err := built.ApplyTransition(customer, order.TransitionRequest{To: order.PendingVerification}); err != nil {
		return nil, err
	}

	return built, nil
}
