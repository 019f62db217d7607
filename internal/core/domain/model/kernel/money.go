package kernel

import (
	"errors"

	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney, MoneyFromString or ZeroMoney constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney constructors")

// Money represents a non-negative monetary amount with at most two decimal
// places. Money is an immutable value object built on decimal arithmetic so
// that totals and prepayment shares never accumulate binary floating point
// drift. The zero value of Money is invalid and will fail validation - use
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("59.99")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: 59.99
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a new Money from a decimal amount.
// The amount must be non-negative and must not carry more than two
// significant decimal places. Returns an error otherwise.
//
// Parameters:
//   - amount: The monetary amount as a decimal
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or too precise
//
// Example:
//
//	m, err := NewMoney(decimal.NewFromInt(150))
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a decimal string such as "59.99" into Money.
// The same validation rules as NewMoney apply. This constructor is typically
// used when reconstructing money from persistence or API payloads.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the string is not a decimal or violates money rules
//
// Example:
//
//	m, err := MoneyFromString("19.90")
//	if err != nil {
//	    return fmt.Errorf("invalid price: %w", err)
//	}
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney creates a valid Money holding the amount 0.00.
// It is the identity element for Add and the natural seed when summing
// line item subtotals.
//
// Example:
//
//	total := ZeroMoney()
//	for _, item := range items {
//	    total, _ = total.Add(item.Subtotal())
//	}
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
// The returned decimal is guaranteed to be non-negative with at most two
// decimal places for properly constructed Money instances.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places,
// for example "150.00". This method implements the fmt.Stringer interface
// and matches how amounts are rendered in API responses.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns the sum of two monetary amounts.
// Both operands must be properly constructed (pass validation) for the
// operation to succeed.
//
// Parameters:
//   - other: The Money to add
//
// Returns:
//   - Money: The sum as a new valid Money
//   - error: Validation error if either operand is improperly constructed
//
// Example:
//
//	a, _ := MoneyFromString("10.50")
//	b, _ := MoneyFromString("4.25")
//	sum, _ := a.Add(b) // sum is 14.75
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MulInt multiplies the amount by a non-negative integer quantity.
// This is how a line item subtotal is derived from its unit price.
//
// Parameters:
//   - quantity: The multiplier (must not be negative)
//
// Returns:
//   - Money: The product as a new valid Money
//   - error: Validation error if the receiver is improperly constructed or quantity is negative
//
// Example:
//
//	unit, _ := MoneyFromString("19.90")
//	subtotal, _ := unit.MulInt(3) // subtotal is 59.70
func (m Money) MulInt(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			errors.New("must not be negative"))
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Percent returns the given percentage of the amount, rounded half up to two
// decimal places. A 20 percent share of 10.99 is therefore 2.20.
//
// Parameters:
//   - percent: The percentage to take (must not be negative)
//
// Returns:
//   - Money: The share as a new valid Money
//   - error: Validation error if the receiver is improperly constructed or percent is negative
//
// Example:
//
//	total, _ := MoneyFromString("250.00")
//	share, _ := total.Percent(20) // share is 50.00
func (m Money) Percent(percent int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if percent < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("percent is invalid",
			errors.New("must not be negative"))
	}

	share := m.amount.
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return Money{
		amount: share,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two monetary amounts for equality.
// Amounts are compared by value, so 1.5 and 1.50 are equal. Both operands
// must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if amounts are equal, false otherwise
//   - error: Validation error if either operand is improperly constructed
//
// Example:
//
//	a, _ := MoneyFromString("1.50")
//	b, _ := MoneyFromString("1.5")
//	equal, _ := a.IsEqual(b) // equal = true
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			errors.New("amount must not be negative"))
	}
	if !amount.Equal(amount.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			errors.New("amount must not have more than two decimal places"))
	}

	m.amount = amount
	return nil
}
