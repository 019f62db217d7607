// Package order provides domain entities and business logic for order
// verification in the marketplace. It implements the Order aggregate root with
// lifecycle management, the verification state machine, and the transition
// history log.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, monetary totals, and lifecycle
//   - Status: A state machine that enforces valid order status transitions per role
//   - Actor: The identity and role on whose behalf a transition is applied
//   - LineItem, Address: Immutable snapshots captured at creation
//   - HistoryEntry: One recorded status transition
//   - PaymentMethod, PaymentStatus: Payment attributes tracked alongside the workflow
//
// Key business rules:
//   - Monetary totals are computed once at creation and never recomputed
//   - Cash on delivery orders carry a fixed prepayment share of the total
//   - Status follows the verification workflow: the admin contacts the seller,
//     records the seller's answer, then contacts the buyer and records the
//     buyer's answer before the order moves into fulfillment
//   - Each transition is allowed only for specific roles, and some require
//     payload fields such as the seller's answer or a rejection reason
//   - Rejected and completed orders are terminal and reject further transitions
//   - Every applied transition appends exactly one history entry
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
