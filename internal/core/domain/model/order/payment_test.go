package order_test

import (
	"fmt"
	"testing"

	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Run("should validate valid methods", func(t *testing.T) {
		require.NoError(t, order.PaymentMethodOnline.Validate())
		require.NoError(t, order.PaymentMethodCOD.Validate())
	})

	t.Run("should reject invalid methods", func(t *testing.T) {
		invalidMethods := []order.PaymentMethod{
			order.PaymentMethodUnknown,
			order.PaymentMethod(-1),
			order.PaymentMethod(3),
		}

		for _, method := range invalidMethods {
			t.Run(fmt.Sprintf("should reject method value %d", int(method)), func(t *testing.T) {
				err := method.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "paymentMethod is invalid")
			})
		}
	})

	t.Run("should return wire strings", func(t *testing.T) {
		assert.Equal(t, "online", order.PaymentMethodOnline.String())
		assert.Equal(t, "cod", order.PaymentMethodCOD.String())
		assert.Equal(t, "unknown", order.PaymentMethodUnknown.String())
		assert.Equal(t, "unknown", order.PaymentMethod(99).String())
	})

	t.Run("should round trip valid strings", func(t *testing.T) {
		for _, s := range []string{"online", "cod"} {
			method, err := order.PaymentMethodFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, method.String())
		}
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "cash", "COD", "card"} {
			method, err := order.PaymentMethodFromString(s)

			require.Error(t, err)
			assert.Equal(t, order.PaymentMethodUnknown, method)
			assert.Contains(t, err.Error(), "is not a valid payment method")
		}
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.PaymentStatus{
			order.PaymentStatusPending,
			order.PaymentStatusPartiallyPaid,
			order.PaymentStatusPaid,
			order.PaymentStatusRefunded,
		}

		for _, status := range validStatuses {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.PaymentStatus{
			order.PaymentStatusUnknown,
			order.PaymentStatus(-1),
			order.PaymentStatus(5),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "paymentStatus is invalid")
			})
		}
	})

	t.Run("should return wire strings", func(t *testing.T) {
		assert.Equal(t, "pending", order.PaymentStatusPending.String())
		assert.Equal(t, "partially_paid", order.PaymentStatusPartiallyPaid.String())
		assert.Equal(t, "paid", order.PaymentStatusPaid.String())
		assert.Equal(t, "refunded", order.PaymentStatusRefunded.String())
		assert.Equal(t, "unknown", order.PaymentStatus(99).String())
	})

	t.Run("should round trip valid strings", func(t *testing.T) {
		for _, s := range []string{"pending", "partially_paid", "paid", "refunded"} {
			status, err := order.PaymentStatusFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "PAID", "partial"} {
			status, err := order.PaymentStatusFromString(s)

			require.Error(t, err)
			assert.Equal(t, order.PaymentStatusUnknown, status)
			assert.Contains(t, err.Error(), "is not a valid payment status")
		}
	})
}
