package commands_test

import (
	"testing"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangePaymentStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangePaymentStatusCommand(orderID, order.PaymentStatusPartiallyPaid)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.PaymentStatusPartiallyPaid, cmd.PaymentStatus())
}

func TestNewChangePaymentStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangePaymentStatusCommand(kernel.UUID{}, order.PaymentStatusPaid)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangePaymentStatusCommand_InvalidPaymentStatus(t *testing.T) {
	_, err := commands.NewChangePaymentStatusCommand(kernel.NewUUID(), order.PaymentStatus(99))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paymentStatus is invalid")
}

func TestChangePaymentStatusCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.ChangePaymentStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangePaymentStatusCommandIsNotConstructed)
}
