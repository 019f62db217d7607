package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/core/ports"
	"brickmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkflowOrderRepository struct{ mock.Mock }

func (m *MockWorkflowOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockWorkflowOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockWorkflowOrderRepository) UpdatePaymentStatus(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockWorkflowOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockWorkflowHistoryRepository struct{ mock.Mock }

func (m *MockWorkflowHistoryRepository) Append(ctx context.Context, entry order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockWorkflowHistoryRepository) ListByOrder(_ context.Context, _ kernel.UUID) ([]order.HistoryEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockWorkflowUoW struct{ mock.Mock }

func (m *MockWorkflowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWorkflowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWorkflowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockWorkflowUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

// storedOrder rebuilds an order the way the repository would return it: base
// snapshot at the given status and no pending history.
func storedOrder(t *testing.T, customerID, sellerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("set-10294", "Modular Bookshop", 2, testMoney(t, "100.00"), "box")
	require.NoError(t, err)

	loaded := time.Now().UTC().Add(-time.Hour)
	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              kernel.NewUUID(),
		CustomerID:      customerID,
		SellerID:        sellerID,
		Items:           []order.LineItem{item},
		DeliveryAddress: testAddress(t),
		Subtotal:        testMoney(t, "200.00"),
		DeliveryCharges: testMoney(t, "50.00"),
		Total:           testMoney(t, "250.00"),
		PaymentMethod:   order.PaymentMethodOnline,
		PaymentStatus:   order.PaymentStatusPending,
		Status:          status,
		ContactAttempts: 0,
		CreatedAt:       loaded,
		UpdatedAt:       loaded,
	})
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	aggregate := storedOrder(t, customerID, sellerID, order.PendingVerification)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), adminID, order.RoleAdmin,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	hist := new(MockWorkflowHistoryRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("HistoryRepository").Return(hist).Once(),
		hist.On("Append", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.SellerContacted, aggregate.Status())
	assert.Equal(t, 1, aggregate.ContactAttempts())
	assert.Equal(t, order.PendingVerification, aggregate.BaseStatus())

	repo.AssertExpectations(t)
	hist.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SellerShipsOwnOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := storedOrder(t, customerID, sellerID, order.Confirmed)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), sellerID, order.RoleSeller,
		order.TransitionRequest{To: order.OutForDelivery},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	hist := new(MockWorkflowHistoryRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("HistoryRepository").Return(hist).Once(),
		hist.On("Append", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, aggregate.Status())

	repo.AssertExpectations(t)
	hist.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(
		orderID, kernel.NewUUID(), order.RoleAdmin,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ForeignCustomerSeesNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Delivered)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.RoleCustomer,
		order.TransitionRequest{To: order.Completed},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	// another customer's order answers exactly like a missing one
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, order.ErrTransitionForbidden)
	assert.Equal(t, order.Delivered, aggregate.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ForeignSellerSeesNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Confirmed)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.RoleSeller,
		order.TransitionRequest{To: order.OutForDelivery},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DomainRejectsTransition(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := storedOrder(t, customerID, kernel.NewUUID(), order.PendingVerification)

	// contacting the seller is workflow work, not a customer move
	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), customerID, order.RoleCustomer,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrTransitionForbidden)
	assert.Equal(t, order.PendingVerification, aggregate.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_StaleStateConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.PendingVerification)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.RoleAdmin,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).
			Return(errs.NewVersionIsInvalidErrorWithCause("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockWorkflowUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.RoleAdmin,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	uow := new(MockWorkflowUoW)
	factory := new(MockWorkflowUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.PendingVerification)

	cmd, err := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.RoleAdmin,
		order.TransitionRequest{To: order.SellerContacted},
	)
	require.NoError(t, err)

	repo := new(MockWorkflowOrderRepository)
	hist := new(MockWorkflowHistoryRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("HistoryRepository").Return(hist).Once(),
		hist.On("Append", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	repo.AssertExpectations(t)
	hist.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
