package queries

import (
	"errors"
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/guard"
)

var ErrGetOverdueVerificationOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueVerificationOrdersQuery must be created via NewGetOverdueVerificationOrdersQuery constructor",
)

// GetOverdueVerificationOrdersQuery retrieves orders stuck in the verification
// phase. An order counts as stuck when it sits in a pre-confirmation status
// and has not been touched for longer than the given age. The reminder job
// runs this query to surface orders an admin should chase.
//
// Example:
//
//	query, _ := NewGetOverdueVerificationOrdersQuery(4 * time.Hour)
//	handler := NewGetOverdueVerificationOrdersQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, o := range overdue {
//	    log.Printf("order %s idle in %s", o.ID, o.Status)
//	}
type GetOverdueVerificationOrdersQuery struct { //nolint:recvcheck //using for validation
	age time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueVerificationOrdersQuery creates a query for verification-phase
// orders idle for at least the given duration. The age must be positive.
func NewGetOverdueVerificationOrdersQuery(age time.Duration) (GetOverdueVerificationOrdersQuery, error) {
	getOverdueVerificationOrdersQuery := GetOverdueVerificationOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := getOverdueVerificationOrdersQuery.setAge(age); err != nil {
		return GetOverdueVerificationOrdersQuery{}, err
	}

	return getOverdueVerificationOrdersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueVerificationOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueVerificationOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueVerificationOrdersQueryIsNotConstructed)
}

// Age returns the minimum idle duration for an order to count as overdue.
func (q GetOverdueVerificationOrdersQuery) Age() time.Duration {
	return q.age
}

func (q *GetOverdueVerificationOrdersQuery) setAge(age time.Duration) error {
	if age <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("age is invalid",
			errors.New("must be greater than zero"))
	}

	q.age = age
	return nil
}

// GetOverdueVerificationOrdersQueryResponse represents one order overdue for
// verification contact.
type GetOverdueVerificationOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	SellerID        kernel.UUID
	Status          order.Status
	ContactAttempts int
	UpdatedAt       time.Time
}
