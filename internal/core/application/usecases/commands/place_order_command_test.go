package commands_test

import (
	"testing"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	items := []commands.PlaceOrderItem{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, addressID, items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("empty item list", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID, customerID, addressID, nil)
		assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		bad := []commands.PlaceOrderItem{{ProductID: kernel.NewUUID(), Quantity: 0}}

		_, err := commands.NewPlaceOrderCommand(orderID, customerID, addressID, bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed customer id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID, kernel.UUID{}, addressID, items)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
