package order

import (
	"fmt"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"
)

// Role identifies the kind of party acting on an order. Transition permissions
// in the status graph are expressed in terms of roles.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is the buyer who placed the order.
	RoleCustomer

	// RoleSeller is the party whose inventory the order was placed against.
	RoleSeller

	// RoleAdmin is the marketplace operator who verifies orders with both parties.
	RoleAdmin

	// RoleSystem is an internal automated actor. It may record contact attempts
	// but never accept, reject or confirm on behalf of a person.
	RoleSystem
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleSeller:   "seller",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleSeller:   "seller",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

// RoleFromString parses the wire representation of a role ("customer",
// "seller", "admin", "system"). Returns an error for anything else.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ErrActorIsNotConstructed is returned when attempting to use an improperly initialized Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the authenticated party requesting an operation: an identity plus
// the role it acts under. The workflow trusts this pair as already verified
// by the authentication collaborator.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an identity and a role.
// Both must be valid; the zero value of Actor fails validation.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Actor was properly constructed using NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor acts under.
func (a Actor) Role() Role {
	return a.role
}
