package orderrepo_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"brickmarket/internal/adapters/out/postgres/orderrepo"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	// Create valid order
	testOrder := suite.createTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order and its line items were persisted
	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	ctx := context.Background()

	// Try to add a zero-value aggregate
	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)

	// Verify nothing was persisted
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order
	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	// Retrieve order
	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	// Verify order details
	suite.True(retrievedOrder.ID().IsEqual(originalOrder.ID()))
	suite.True(retrievedOrder.CustomerID().IsEqual(originalOrder.CustomerID()))
	suite.True(retrievedOrder.SellerID().IsEqual(originalOrder.SellerID()))
	suite.Equal(originalOrder.DeliveryAddress(), retrievedOrder.DeliveryAddress())
	suite.Equal("250.00", retrievedOrder.Subtotal().String())
	suite.Equal("50.00", retrievedOrder.DeliveryCharges().String())
	suite.Equal("300.00", retrievedOrder.Total().String())
	suite.Equal(order.PaymentMethodOnline, retrievedOrder.PaymentMethod())
	suite.Equal(order.PaymentStatusPending, retrievedOrder.PaymentStatus())
	suite.Nil(retrievedOrder.PrepaymentAmount())
	suite.Equal(order.PendingVerification, retrievedOrder.Status())
	suite.Equal(0, retrievedOrder.ContactAttempts())

	// Verify line items survived the round trip in insertion order
	items := retrievedOrder.Items()
	suite.Require().Len(items, 2)
	suite.Equal("set-10294", items[0].ProductID())
	suite.Equal("Modular Bookshop", items[0].Title())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("100.00", items[0].Price().String())
	suite.Equal("box", items[0].Unit())
	suite.Equal("set-40585", items[1].ProductID())

	// Timestamps come back within database precision
	suite.WithinDuration(originalOrder.CreatedAt(), retrievedOrder.CreatedAt(), time.Second)
	suite.WithinDuration(originalOrder.UpdatedAt(), retrievedOrder.UpdatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_CashOnDeliveryOrder_RestoresPrepayment() {
	ctx := context.Background()

	// Create COD order; the prepayment share is derived at construction time
	codOrder := suite.createTestCODOrder()
	suite.Require().NotNil(codOrder.PrepaymentAmount())

	suite.tracker.On("TrackAggregate", codOrder.ID(), codOrder).Once()
	err := suite.repository.Add(ctx, codOrder)
	suite.Require().NoError(err)

	// Retrieve and verify the prepayment share survived
	retrievedOrder, err := suite.repository.Get(ctx, codOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.PaymentMethodCOD, retrievedOrder.PaymentMethod())
	suite.Require().NotNil(retrievedOrder.PrepaymentAmount())
	suite.Equal("60.00", retrievedOrder.PrepaymentAmount().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent order
	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppliedTransition_PersistsWorkflowColumns() {
	ctx := context.Background()
	admin := suite.adminActor()

	// Persist a fresh order awaiting verification
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First hop: the admin contacts the seller
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = loaded.ApplyTransition(admin, order.TransitionRequest{To: order.SellerContacted})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Second hop: the seller confirms availability
	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = loaded.ApplyTransition(admin, order.TransitionRequest{
		To:             order.SellerAccepted,
		SellerResponse: "in stock, ships tomorrow",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Retrieve and verify the persisted workflow state
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.SellerAccepted, retrievedOrder.Status())
	suite.Equal(1, retrievedOrder.ContactAttempts())
	suite.Equal("in stock, ships tomorrow", retrievedOrder.SellerResponse())

	// Line items are untouched by workflow updates
	suite.Len(retrievedOrder.Items(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleAggregate_ReturnsVersionConflict() {
	ctx := context.Background()
	admin := suite.adminActor()

	// Persist an order and load it twice
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First copy wins
	err = first.ApplyTransition(admin, order.TransitionRequest{To: order.SellerContacted})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second copy was loaded before the first write and must lose
	err = second.ApplyTransition(admin, order.TransitionRequest{To: order.SellerContacted})
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	// The winner's write is what persisted
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.SellerContacted, retrievedOrder.Status())
	suite.Equal(1, retrievedOrder.ContactAttempts())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail

	// Try to update non-existent order
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentTransitions_OnlyOneWins() {
	ctx := context.Background()
	admin := suite.adminActor()

	// Persist an order already in the seller-contact phase; only the Add, the
	// setup transition and the single winning update track an aggregate
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = loaded.ApplyTransition(admin, order.TransitionRequest{To: order.SellerContacted})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Two goroutines race different transitions from the same loaded state
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = first.ApplyTransition(admin, order.TransitionRequest{
		To:             order.SellerAccepted,
		SellerResponse: "in stock",
	})
	suite.Require().NoError(err)
	err = second.ApplyTransition(admin, order.TransitionRequest{To: order.SellerContacted})
	suite.Require().NoError(err)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, aggregate := range []*order.Order{first, second} {
		wg.Add(1)
		go func(i int, aggregate *order.Order) {
			defer wg.Done()
			results[i] = suite.repository.Update(ctx, aggregate)
		}(i, aggregate)
	}
	wg.Wait()

	// Exactly one write wins; the other sees a version conflict
	winners := 0
	for _, updateErr := range results {
		if updateErr == nil {
			winners++
		} else {
			suite.ErrorIs(updateErr, errs.ErrVersionIsInvalid)
		}
	}
	suite.Equal(1, winners)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePaymentStatus_Success() {
	ctx := context.Background()

	// Persist an order and mark it paid
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.SetPaymentStatus(order.PaymentStatusPaid))
	suite.Require().NoError(suite.repository.UpdatePaymentStatus(ctx, loaded))

	// Payment moved, workflow did not
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PaymentStatusPaid, retrievedOrder.PaymentStatus())
	suite.Equal(order.PendingVerification, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePaymentStatus_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.UpdatePaymentStatus(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				nonExistentOrder := suite.createTestOrder()
				return suite.repository.Update(context.Background(), nonExistentOrder)
			},
			expected: "not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	// Create initial order
	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.True(result.ID().IsEqual(initialOrder.ID()))
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// adminActor builds an admin actor for driving transitions.
func (suite *OrderRepositoryIntegrationTestSuite) adminActor() order.Actor {
	actor, err := order.NewActor(kernel.NewUUID(), order.RoleAdmin)
	suite.Require().NoError(err)
	return actor
}

// createTestOrder creates an order awaiting verification with a two-item cart
// totalling 300.00 including delivery, paid online.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.restoreTestOrder(order.PaymentMethodOnline, nil)
}

// createTestCODOrder creates the same order paid cash on delivery with the
// 20 percent prepayment share of 60.00.
func (suite *OrderRepositoryIntegrationTestSuite) createTestCODOrder() *order.Order {
	prepayment := testMoney(suite.T(), "60.00")
	return suite.restoreTestOrder(order.PaymentMethodCOD, &prepayment)
}

func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(
	paymentMethod order.PaymentMethod,
	prepayment *kernel.Money,
) *order.Order {
	now := time.Now().UTC()

	testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		SellerID:         kernel.NewUUID(),
		Items:            testLineItems(suite.T()),
		DeliveryAddress:  testAddress(suite.T()),
		Subtotal:         testMoney(suite.T(), "250.00"),
		DeliveryCharges:  testMoney(suite.T(), "50.00"),
		Total:            testMoney(suite.T(), "300.00"),
		PaymentMethod:    paymentMethod,
		PaymentStatus:    order.PaymentStatusPending,
		PrepaymentAmount: prepayment,
		Status:           order.PendingVerification,
		ContactAttempts:  0,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of line item rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

// testMoney builds a Money fixture from its decimal string form.
func testMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return money
}

// testAddress builds a delivery address fixture.
func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress(
		"Alex Brick",
		"+7 900 000 11 22",
		"12 Baker Street",
		"apt 4",
		"Springfield",
		"123456",
	)
	require.NoError(t, err)
	return address
}

// testLineItems builds a two-position cart snapshot totalling 250.00.
func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()

	bookshop, err := order.NewLineItem("set-10294", "Modular Bookshop", 2, testMoney(t, "100.00"), "box")
	require.NoError(t, err)

	minifigs, err := order.NewLineItem("set-40585", "Minifigure Pack", 1, testMoney(t, "50.00"), "blister")
	require.NoError(t, err)

	return []order.LineItem{bookshop, minifigs}
}
