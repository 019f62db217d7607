package order

import (
	"fmt"

	"brickmarket/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay for the order.
// It is fixed at checkout and never changes afterwards.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodOnline means the customer pays the full amount up front.
	PaymentMethodOnline

	// PaymentMethodCOD means cash on delivery with a prepayment share
	// collected at checkout.
	PaymentMethodCOD
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodOnline:  "online",
		PaymentMethodCOD:     "cod",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	strings := getPaymentMethodStrings()
	delete(strings, PaymentMethodUnknown)
	return strings
}

// PaymentMethodFromString parses the wire representation of a payment method
// ("online" or "cod").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks how much of the order has actually been paid.
// It changes independently of the order status: payment capture is handled by
// an external collaborator and reported back through the workflow API.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means nothing has been paid yet.
	PaymentStatusPending

	// PaymentStatusPartiallyPaid means the prepayment share has been collected
	// but the balance is still outstanding.
	PaymentStatusPartiallyPaid

	// PaymentStatusPaid means the full amount has been collected.
	PaymentStatusPaid

	// PaymentStatusRefunded means a collected amount was returned to the customer.
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:       "unknown",
		PaymentStatusPending:       "pending",
		PaymentStatusPartiallyPaid: "partially_paid",
		PaymentStatusPaid:          "paid",
		PaymentStatusRefunded:      "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	strings := getPaymentStatusStrings()
	delete(strings, PaymentStatusUnknown)
	return strings
}

// PaymentStatusFromString parses the wire representation of a payment status
// ("pending", "partially_paid", "paid", "refunded").
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus is invalid",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
