package queries_test

import (
	"testing"

	"brickmarket/internal/core/application/usecases/queries"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	actorID := kernel.NewUUID()

	query, err := queries.NewGetOrdersQuery(actorID, order.RoleSeller)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.True(t, query.ActorID().IsEqual(actorID))
	assert.Equal(t, order.RoleSeller, query.ActorRole())
}

func TestNewGetOrdersQuery_InvalidActorID(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.UUID{}, order.RoleCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrdersQuery_InvalidActorRole(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.NewUUID(), order.Role(99))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role is invalid")
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
