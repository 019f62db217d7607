package commands_test

import (
	"testing"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress(
		"Alex Brick", "+7 900 000 11 22", "12 Baker Street", "apt 4", "Springfield", "123456",
	)
	require.NoError(t, err)
	return address
}

func testCartItems(t *testing.T, sellerID kernel.UUID) []services.CartItem {
	t.Helper()
	return []services.CartItem{
		{
			SellerID:  sellerID,
			ProductID: "set-10294",
			Title:     "Modular Bookshop",
			Quantity:  2,
			Price:     testMoney(t, "100.00"),
			Unit:      "box",
		},
		{
			SellerID:  sellerID,
			ProductID: "set-40585",
			Title:     "Minifigure Pack",
			Quantity:  1,
			Price:     testMoney(t, "50.00"),
			Unit:      "blister",
		},
	}
}

func TestNewCheckoutCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	items := testCartItems(t, sellerID)
	address := testAddress(t)

	cmd, err := commands.NewCheckoutCommand(customerID, items, address, order.PaymentMethodCOD)
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, address, cmd.DeliveryAddress())
	assert.Equal(t, order.PaymentMethodCOD, cmd.PaymentMethod())
}

func TestNewCheckoutCommand_InvalidCustomerID(t *testing.T) {
	sellerID := kernel.NewUUID()
	_, err := commands.NewCheckoutCommand(
		kernel.UUID{}, testCartItems(t, sellerID), testAddress(t), order.PaymentMethodOnline,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCheckoutCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), nil, testAddress(t), order.PaymentMethodOnline,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCartItemsAreRequired)
}

func TestNewCheckoutCommand_UnconstructedAddress(t *testing.T) {
	sellerID := kernel.NewUUID()
	_, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), testCartItems(t, sellerID), order.Address{}, order.PaymentMethodOnline,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
}

func TestNewCheckoutCommand_InvalidPaymentMethod(t *testing.T) {
	sellerID := kernel.NewUUID()
	_, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), testCartItems(t, sellerID), testAddress(t), order.PaymentMethod(99),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paymentMethod is invalid")
}

func TestNewCheckoutCommand_MultipleErrors(t *testing.T) {
	_, err := commands.NewCheckoutCommand(
		kernel.UUID{}, nil, order.Address{}, order.PaymentMethod(99),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrCartItemsAreRequired)
	assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
}

func TestCheckoutCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CheckoutCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}
