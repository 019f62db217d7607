package order

import (
	"errors"
	"fmt"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/pkg/errs"
)

// PrepaymentPercent is the share of the total collected up front for cash on
// delivery orders, expressed as a whole percentage.
const PrepaymentPercent int64 = 20

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// TransitionRequest carries the payload of one requested status transition:
// the target status plus the free-text fields that particular edges require.
// At most one of SellerResponse and BuyerResponse may be set per transition.
type TransitionRequest struct {
	To             Status
	SellerResponse string
	BuyerResponse  string
	RejectReason   string
	Note           string
}

// Validate checks the request's target status and the mutual exclusivity of
// the seller and buyer response fields. Per-edge field requirements are
// checked by Order.ApplyTransition against the allow-list table.
func (r TransitionRequest) Validate() error {
	if err := r.To.Validate(); err != nil {
		return err
	}
	if r.SellerResponse != "" && r.BuyerResponse != "" {
		return errs.NewValueIsInvalidErrorWithCause("transition request is invalid",
			errors.New("at most one of sellerResponse and buyerResponse may be set per transition"))
	}
	return nil
}

// Order represents one seller's slice of a checkout in the marketplace. It is
// the aggregate root that manages the verification workflow from creation
// through admin verification with seller and buyer to fulfillment.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself and both owning parties
//   - Items, prices and the delivery address are immutable snapshots taken at creation
//   - total = subtotal + deliveryCharges, computed once at creation and never recomputed
//   - For cash on delivery, prepaymentAmount = total * PrepaymentPercent / 100, fixed at creation
//   - Status changes only through ApplyTransition, which consults the allow-list table
//   - Every successful transition records exactly one pending history entry
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	sellerID   kernel.UUID

	items           []LineItem
	deliveryAddress Address

	subtotal         kernel.Money
	deliveryCharges  kernel.Money
	total            kernel.Money
	paymentMethod    PaymentMethod
	paymentStatus    PaymentStatus
	prepaymentAmount *kernel.Money

	status          Status
	contactAttempts int
	sellerResponse  string
	buyerResponse   string
	rejectReason    string
	note            string

	createdAt time.Time
	updatedAt time.Time

	// baseStatus and baseContactAttempts snapshot the values the aggregate
	// was loaded with. Guarded updates use them as the compare part of the
	// optimistic compare-and-swap against concurrent writers.
	baseStatus          Status
	baseContactAttempts int

	// pendingHistory collects the history entries recorded since the
	// aggregate was created or restored. The repository persists them
	// atomically with the order row.
	pendingHistory []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a fresh Order, ensuring all business invariants hold from the start.
//
// The monetary invariants are established here and never recomputed:
// subtotal is the sum of the item subtotals, total = subtotal +
// deliveryCharges, and for cash on delivery the prepayment share is
// PrepaymentPercent of the total. The order starts in Created status with a
// pending payment; the caller is expected to move it to PendingVerification
// via ApplyTransition before handing it to the record store.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: The buyer's identity (must be a valid UUID)
//   - sellerID: The seller's identity (must be a valid UUID)
//   - items: Line item snapshots (at least one, all valid)
//   - deliveryAddress: Delivery address snapshot (must be valid)
//   - deliveryCharges: Flat delivery charge for this seller-order
//   - paymentMethod: Online or cash on delivery
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	sellerID kernel.UUID,
	items []LineItem,
	deliveryAddress Address,
	deliveryCharges kernel.Money,
	paymentMethod PaymentMethod,
) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Created,
		paymentStatus: PaymentStatusPending,
		baseStatus:    Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setSellerID(sellerID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setDeliveryCharges(deliveryCharges),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := order.computeTotals(); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries every persisted attribute needed to rebuild an
// Order aggregate from storage. Used only by repository implementations.
type RestoreOrderParams struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	SellerID         kernel.UUID
	Items            []LineItem
	DeliveryAddress  Address
	Subtotal         kernel.Money
	DeliveryCharges  kernel.Money
	Total            kernel.Money
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	PrepaymentAmount *kernel.Money
	Status           Status
	ContactAttempts  int
	SellerResponse   string
	BuyerResponse    string
	RejectReason     string
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreOrder rebuilds an Order from persisted state without re-deriving the
// monetary values: totals were fixed at creation time and storage is their
// source of truth. The restored status and contact attempt counter double as
// the base snapshot for optimistic concurrency checks on the next update.
//
// Returns a validation error if any persisted attribute is structurally
// invalid, which indicates corrupted storage rather than bad user input.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		paymentStatus:       params.PaymentStatus,
		status:              params.Status,
		contactAttempts:     params.ContactAttempts,
		sellerResponse:      params.SellerResponse,
		buyerResponse:       params.BuyerResponse,
		rejectReason:        params.RejectReason,
		note:                params.Note,
		createdAt:           params.CreatedAt,
		updatedAt:           params.UpdatedAt,
		baseStatus:          params.Status,
		baseContactAttempts: params.ContactAttempts,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setCustomerID(params.CustomerID),
		order.setSellerID(params.SellerID),
		order.setItems(params.Items),
		order.setDeliveryAddress(params.DeliveryAddress),
		order.setDeliveryCharges(params.DeliveryCharges),
		order.setPaymentMethod(params.PaymentMethod),
		params.Status.Validate(),
		params.PaymentStatus.Validate(),
		params.Subtotal.Validate(),
		params.Total.Validate(),
	); err != nil {
		return nil, err
	}

	if params.ContactAttempts < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("contactAttempts is invalid",
			fmt.Errorf("%d is negative", params.ContactAttempts))
	}
	if params.PrepaymentAmount != nil {
		if err := params.PrepaymentAmount.Validate(); err != nil {
			return nil, err
		}
		prepayment := *params.PrepaymentAmount
		order.prepaymentAmount = &prepayment
	}

	order.subtotal = params.Subtotal
	order.total = params.Total

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the buyer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SellerID returns the seller's identity.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Items returns the line item snapshots captured at creation.
func (o *Order) Items() []LineItem {
	return o.items
}

// DeliveryAddress returns the delivery address snapshot captured at creation.
func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

// Subtotal returns the sum of the line item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryCharges returns the flat delivery charge for this seller-order.
func (o *Order) DeliveryCharges() kernel.Money {
	return o.deliveryCharges
}

// Total returns subtotal plus delivery charges.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns how much of the order has been paid so far.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PrepaymentAmount returns the fixed prepayment share for cash on delivery
// orders, or nil for online payment.
func (o *Order) PrepaymentAmount() *kernel.Money {
	return o.prepaymentAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ContactAttempts returns how many times the admin (or the system on their
// behalf) has recorded reaching out to the seller or the buyer.
func (o *Order) ContactAttempts() int {
	return o.contactAttempts
}

// SellerResponse returns the seller's recorded answer, if any.
func (o *Order) SellerResponse() string {
	return o.sellerResponse
}

// BuyerResponse returns the buyer's recorded answer, if any.
func (o *Order) BuyerResponse() string {
	return o.buyerResponse
}

// RejectReason returns the recorded rejection reason, if any.
func (o *Order) RejectReason() string {
	return o.rejectReason
}

// Note returns the most recent free-text note recorded with a transition.
func (o *Order) Note() string {
	return o.note
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BaseStatus returns the status the aggregate was loaded with. Guarded
// updates compare it against the stored row to detect concurrent writers.
func (o *Order) BaseStatus() Status {
	return o.baseStatus
}

// BaseContactAttempts returns the contact attempt counter the aggregate was
// loaded with. Guarded updates compare it against the stored row to detect
// concurrent contact attempts.
func (o *Order) BaseContactAttempts() int {
	return o.baseContactAttempts
}

// PendingHistory returns the history entries recorded since the aggregate was
// created or restored, in the order they occurred. The repository persists
// them atomically with the order row.
func (o *Order) PendingHistory() []HistoryEntry {
	return o.pendingHistory
}

// VisibleTo reports whether the given actor may see this order at all.
// Customers see their own orders, sellers the orders placed against them,
// and the admin and system roles see everything. Callers treat an invisible
// order exactly like a missing one, so probing for foreign order identifiers
// reveals nothing.
func (o *Order) VisibleTo(actor Actor) bool {
	switch actor.Role() {
	case RoleCustomer:
		return actor.ID().IsEqual(o.customerID)
	case RoleSeller:
		return actor.ID().IsEqual(o.sellerID)
	case RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

// ApplyTransition validates and applies one status transition on behalf of
// the given actor. It is the single authority over the order's status; all
// role permissions, payload requirements and the legal-transition graph are
// enforced here against the allow-list table.
//
// The checks run in a fixed order, and the first failure wins:
//  1. The request itself must be well formed (valid target status, at most
//     one of sellerResponse/buyerResponse).
//  2. A terminal current status fails with TerminalStateError.
//  3. An edge absent from the allow-list fails with InvalidTransitionError.
//  4. A role outside the edge's allow-list, or a seller/customer acting on
//     somebody else's order, fails with ForbiddenTransitionError.
//  5. Missing required payload fields fail with a ValueIsRequiredError.
//
// On success the status is updated in place, contact-attempt edges increment
// the counter by exactly one, the provided free-text fields are recorded, and
// one history entry is appended to the pending history. Nothing is persisted
// here; the surrounding command handler writes the aggregate and its pending
// history through a unit of work so the change is all-or-nothing.
func (o *Order) ApplyTransition(actor Actor, req TransitionRequest) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	rule, ok := o.status.ruleFor(req.To)
	if !ok {
		return NewInvalidTransitionError(o.status, req.To)
	}

	if !rule.allowsRole(actor.Role()) {
		return NewForbiddenTransitionError(actor.Role(), o.status, req.To)
	}
	if actor.Role() == RoleSeller && !actor.ID().IsEqual(o.sellerID) {
		return NewForbiddenTransitionError(actor.Role(), o.status, req.To)
	}
	if actor.Role() == RoleCustomer && !actor.ID().IsEqual(o.customerID) {
		return NewForbiddenTransitionError(actor.Role(), o.status, req.To)
	}

	if rule.requiresSellerResponse && req.SellerResponse == "" {
		return errs.NewValueIsRequiredError("sellerResponse")
	}
	if rule.requiresBuyerResponse && req.BuyerResponse == "" {
		return errs.NewValueIsRequiredError("buyerResponse")
	}
	if rule.requiresRejectReason && req.RejectReason == "" {
		return errs.NewValueIsRequiredError("rejectReason")
	}

	now := time.Now().UTC()
	entry, err := NewHistoryEntry(o.id, o.status, req.To, actor.Role(), req.Note, now)
	if err != nil {
		return err
	}

	o.status = req.To
	if rule.contactAttempt {
		o.contactAttempts++
	}
	if req.SellerResponse != "" {
		o.sellerResponse = req.SellerResponse
	}
	if req.BuyerResponse != "" {
		o.buyerResponse = req.BuyerResponse
	}
	if req.RejectReason != "" {
		o.rejectReason = req.RejectReason
	}
	if req.Note != "" {
		o.note = req.Note
	}
	o.updatedAt = now
	o.pendingHistory = append(o.pendingHistory, entry)

	return nil
}

// SetPaymentStatus records a payment status reported by the payment
// collaborator. Payment status changes independently of the order status and
// does not append history.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	o.paymentStatus = status
	o.updatedAt = time.Now().UTC()
	return nil
}

// computeTotals derives subtotal, total and the cash on delivery prepayment
// share from the items and delivery charges. Called exactly once, at creation.
func (o *Order) computeTotals() error {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		itemSubtotal, err := item.Subtotal()
		if err != nil {
			return err
		}
		subtotal, err = subtotal.Add(itemSubtotal)
		if err != nil {
			return err
		}
	}

	total, err := subtotal.Add(o.deliveryCharges)
	if err != nil {
		return err
	}

	o.subtotal = subtotal
	o.total = total

	if o.paymentMethod == PaymentMethodCOD {
		prepayment, err := total.Percent(PrepaymentPercent)
		if err != nil {
			return err
		}
		o.prepaymentAmount = &prepayment
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the buyer's identity.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setSellerID validates and sets the seller's identity.
// This is a private method used only during construction.
func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

// setItems validates and sets the line item snapshots.
// At least one item is required and each must be valid.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// setDeliveryAddress validates and sets the delivery address snapshot.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setDeliveryCharges validates and sets the flat delivery charge.
// This is a private method used only during construction.
func (o *Order) setDeliveryCharges(deliveryCharges kernel.Money) error {
	if err := deliveryCharges.Validate(); err != nil {
		return err
	}
	o.deliveryCharges = deliveryCharges
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}
