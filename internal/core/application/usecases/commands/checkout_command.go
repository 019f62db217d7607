package commands

import (
	"errors"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/core/domain/services"
	"brickmarket/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartItemsAreRequired = errors.New("cart must contain at least one item")
)

// CheckoutCommand represents a customer's request to turn their cart into
// orders. The cart may mix items from several sellers; the handler splits it
// into one independent order per seller.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, cartItems, address, order.PaymentMethodCOD)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, splitter)
//	results, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Inspect results per seller: some groups may have failed independently
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	items           []services.CartItem
	deliveryAddress order.Address
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out a cart.
// Validates that the customer ID is valid, the cart is not empty, the
// delivery address was properly constructed and the payment method is known.
// Item-level validation happens in the domain, per seller group.
func NewCheckoutCommand(
	customerID kernel.UUID,
	items []services.CartItem,
	deliveryAddress order.Address,
	paymentMethod order.PaymentMethod,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setItems(items),
		checkoutCommand.setDeliveryAddress(deliveryAddress),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer checking out.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart positions to split into orders.
func (c CheckoutCommand) Items() []services.CartItem {
	return c.items
}

// DeliveryAddress returns the delivery address for every produced order.
func (c CheckoutCommand) DeliveryAddress() order.Address {
	return c.deliveryAddress
}

// PaymentMethod returns the payment method for every produced order.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setItems(items []services.CartItem) error {
	if len(items) == 0 {
		return ErrCartItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress order.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
