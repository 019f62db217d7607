package order

import (
	"fmt"
	"slices"

	"brickmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the verification workflow before fulfillment.
//
// State transitions (terminal states marked *):
//
//	created ──> pending_verification ──> seller_contacted ──┬──> seller_accepted ──> buyer_contacted ──┬──> confirmed
//	                                          │      ▲      └──> seller_rejected*        │      ▲      └──> buyer_rejected*
//	                                          └──────┘                                   └──────┘
//	                                     (repeat contact)                           (repeat contact)
//
//	confirmed ──> out_for_delivery ──> delivered ──> completed*
//
// Entering seller_contacted or buyer_contacted (including the repeat-contact
// self loops) counts as one contact attempt. Every legal edge, the roles that
// may drive it and the payload fields it requires are held in a single
// allow-list table consulted by Order.ApplyTransition; there is no other
// transition logic anywhere in the system.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the transient initial status assigned by the checkout.
	// Orders leave it for PendingVerification before they are first persisted.
	Created

	// PendingVerification means the order waits in the admin queue for
	// verification with the seller.
	PendingVerification

	// SellerContacted means the admin has reached out to the seller and is
	// waiting for an answer. Repeat contact attempts stay in this status.
	SellerContacted

	// SellerAccepted means the seller confirmed the order details.
	SellerAccepted

	// SellerRejected means the seller declined the order. Terminal.
	SellerRejected

	// BuyerContacted means the admin has reached out to the buyer and is
	// waiting for an answer. Repeat contact attempts stay in this status.
	BuyerContacted

	// Confirmed means the buyer confirmed the order and fulfillment may begin.
	Confirmed

	// BuyerRejected means the buyer backed out of the order. Terminal.
	BuyerRejected

	// OutForDelivery means the seller has handed the order to delivery.
	OutForDelivery

	// Delivered means the order reached the buyer.
	Delivered

	// Completed means the buyer acknowledged receipt. Terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		Created:             "created",
		PendingVerification: "pending_verification",
		SellerContacted:     "seller_contacted",
		SellerAccepted:      "seller_accepted",
		SellerRejected:      "seller_rejected",
		BuyerContacted:      "buyer_contacted",
		Confirmed:           "confirmed",
		BuyerRejected:       "buyer_rejected",
		OutForDelivery:      "out_for_delivery",
		Delivered:           "delivered",
		Completed:           "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// StatusFromString parses the wire representation of a status, for example
// "pending_verification". Returns an error for anything outside the valid set.
// This function is used when reconstructing orders from persistence and when
// parsing transition requests from the API.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any out-of-range values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, for example
// "seller_contacted". The same representation is used in the database,
// in API payloads and in history entries.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Terminal statuses are SellerRejected, BuyerRejected and Completed.
// Any transition attempt from a terminal status fails with a
// TerminalStateError regardless of target, role or payload.
func (s Status) IsTerminal() bool {
	return s == SellerRejected || s == BuyerRejected || s == Completed
}

// CanTransitionTo reports whether the edge from s to target exists in the
// allow-list. It ignores roles and payload requirements; use
// Order.ApplyTransition for the full check.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := s.ruleFor(target)
	return ok
}

// ruleFor looks up the transition rule for the edge from s to target.
func (s Status) ruleFor(target Status) (transitionRule, bool) {
	targets, ok := transitionRules()[s]
	if !ok {
		return transitionRule{}, false
	}
	rule, ok := targets[target]
	return rule, ok
}

// transitionRule describes one edge of the status graph: who may drive it,
// whether it counts as a contact attempt, and which payload fields it requires.
type transitionRule struct {
	roles                  []Role
	contactAttempt         bool
	requiresSellerResponse bool
	requiresBuyerResponse  bool
	requiresRejectReason   bool
}

// allowsRole reports whether the given role may drive this edge.
func (r transitionRule) allowsRole(role Role) bool {
	return slices.Contains(r.roles, role)
}

// transitionRules returns the allow-list table for the status graph.
// Any {from, to} pair absent from this table is an invalid transition.
//
// The verification chain (contacting the seller, recording the seller's
// answer, contacting the buyer, recording the buyer's answer) belongs to the
// admin; automated contact-attempt reminders may additionally run under the
// system role. Fulfillment edges are driven by the seller (or the admin on
// their behalf), and final receipt confirmation by the customer.
func transitionRules() map[Status]map[Status]transitionRule {
	return map[Status]map[Status]transitionRule{
		Created: {
			PendingVerification: {roles: []Role{RoleCustomer}},
		},
		PendingVerification: {
			SellerContacted: {roles: []Role{RoleAdmin, RoleSystem}, contactAttempt: true},
		},
		SellerContacted: {
			SellerContacted: {roles: []Role{RoleAdmin, RoleSystem}, contactAttempt: true},
			SellerAccepted:  {roles: []Role{RoleAdmin}, requiresSellerResponse: true},
			SellerRejected:  {roles: []Role{RoleAdmin}, requiresSellerResponse: true, requiresRejectReason: true},
		},
		SellerAccepted: {
			BuyerContacted: {roles: []Role{RoleAdmin, RoleSystem}, contactAttempt: true},
		},
		BuyerContacted: {
			BuyerContacted: {roles: []Role{RoleAdmin, RoleSystem}, contactAttempt: true},
			Confirmed:      {roles: []Role{RoleAdmin}, requiresBuyerResponse: true},
			BuyerRejected:  {roles: []Role{RoleAdmin}, requiresBuyerResponse: true, requiresRejectReason: true},
		},
		Confirmed: {
			OutForDelivery: {roles: []Role{RoleSeller, RoleAdmin}},
		},
		OutForDelivery: {
			Delivered: {roles: []Role{RoleSeller, RoleAdmin}},
		},
		Delivered: {
			Completed: {roles: []Role{RoleCustomer, RoleAdmin}},
		},
	}
}
