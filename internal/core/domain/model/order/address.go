package order

import (
	"errors"
	"fmt"

	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a snapshot of the delivery destination captured at order time.
// It deliberately copies the fields instead of referencing the customer's
// address book: the book entry may be edited or deleted later, while the
// order must keep shipping to where the customer asked at checkout.
//
// Address is an immutable value object. The zero value is invalid and will
// fail validation - use NewAddress to create instances.
type Address struct { //nolint:recvcheck //using for validation
	fullName   string
	phone      string
	line1      string
	line2      string
	city       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address snapshot with validation.
// All fields except line2 are required.
func NewAddress(fullName, phone, line1, line2, city, postalCode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setFullName(fullName),
		addr.setPhone(phone),
		addr.setLine1(line1),
		addr.setLine2(line2),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the recipient's name.
func (a Address) FullName() string {
	return a.fullName
}

// Phone returns the recipient's contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// Line1 returns the first street address line.
func (a Address) Line1() string {
	return a.line1
}

// Line2 returns the optional second street address line.
func (a Address) Line2() string {
	return a.line2
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// String returns a single-line rendering of the address for logs and display.
func (a Address) String() string {
	if a.line2 == "" {
		return fmt.Sprintf("%s, %s, %s %s", a.fullName, a.line1, a.city, a.postalCode)
	}
	return fmt.Sprintf("%s, %s, %s, %s %s", a.fullName, a.line1, a.line2, a.city, a.postalCode)
}

func (a *Address) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setLine2(line2 string) error {
	a.line2 = line2
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}
