package order

import (
	"errors"
	"fmt"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an improperly
// initialized LineItem. Line items must be created via NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is a snapshot of one purchased product position, captured at
// order-creation time. Title and price are copied from the catalog rather than
// referenced, so later catalog edits never rewrite what the customer actually
// bought.
//
// LineItem is an immutable value object. The zero value is invalid and will
// fail validation - use NewLineItem to create instances.
type LineItem struct { //nolint:recvcheck //using for validation
	productID string
	title     string
	quantity  int
	price     kernel.Money
	unit      string
	guard     guard.ConstructorGuard
}

// NewLineItem creates a LineItem snapshot with validation.
//
// Parameters:
//   - productID: Catalog identifier of the product (required)
//   - title: Product title as shown to the customer at purchase time (required)
//   - quantity: Number of units (must be positive)
//   - price: Unit price (must be a valid Money)
//   - unit: Unit of measure, for example "pcs" (required)
//
// Returns:
//   - LineItem: A valid line item snapshot
//   - error: Validation error if any field is missing or invalid
func NewLineItem(productID string, title string, quantity int, price kernel.Money, unit string) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setTitle(title),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setUnit(unit),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks if the LineItem was properly constructed using NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog identifier of the product.
func (li LineItem) ProductID() string {
	return li.productID
}

// Title returns the product title captured at purchase time.
func (li LineItem) Title() string {
	return li.title
}

// Quantity returns the number of units purchased.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Price returns the unit price captured at purchase time.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Unit returns the unit of measure, for example "pcs".
func (li LineItem) Unit() string {
	return li.unit
}

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return li.price.MulInt(li.quantity)
}

func (li *LineItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	li.title = title
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.price = price
	return nil
}

func (li *LineItem) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	li.unit = unit
	return nil
}
