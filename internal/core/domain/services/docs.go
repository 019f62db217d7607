// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutSplitter: A domain service that splits a mixed cart into one
//     order per seller, pricing each group independently
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
