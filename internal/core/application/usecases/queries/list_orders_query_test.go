package queries_test

import (
	"testing"

	"pharmadelivery/internal/core/application/usecases/queries"
	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, nil)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.CustomerID())
		assert.Nil(t, query.Archived())
	})

	t.Run("with filters", func(t *testing.T) {
		customerID := kernel.NewUUID()
		archived := false

		query, err := queries.NewListOrdersQuery(&customerID, &archived)

		require.NoError(t, err)
		require.NotNil(t, query.CustomerID())
		assert.True(t, query.CustomerID().IsEqual(customerID))
		assert.False(t, *query.Archived())
	})

	t.Run("unconstructed customer id", func(t *testing.T) {
		var badID kernel.UUID
		_, err := queries.NewListOrdersQuery(&badID, nil)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListAvailableOrdersQuery(t *testing.T) {
	riderID := kernel.NewUUID()

	query, err := queries.NewListAvailableOrdersQuery(riderID)
	require.NoError(t, err)
	assert.True(t, query.RiderID().IsEqual(riderID))

	_, err = queries.NewListAvailableOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.ListAvailableOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrListAvailableOrdersQueryIsNotConstructed)
}

func TestNewListNotificationsQuery(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewListNotificationsQuery(userID)
	require.NoError(t, err)
	assert.True(t, query.UserID().IsEqual(userID))

	_, err = queries.NewListNotificationsQuery(kernel.UUID{})
	require.Error(t, err)
}
