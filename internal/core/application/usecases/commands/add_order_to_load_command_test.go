package commands_test

import (
	"testing"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderToLoadCommand(t *testing.T) {
	t.Run("valid identifiers", func(t *testing.T) {
		loadID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAddOrderToLoadCommand(loadID, orderID, services.OptionOverrides{})

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.LoadID().IsEqual(loadID))
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("zero load id is rejected", func(t *testing.T) {
		_, err := commands.NewAddOrderToLoadCommand(kernel.UUID{}, kernel.NewUUID(), services.OptionOverrides{})
		assert.Error(t, err)
	})

	t.Run("zero order id is rejected", func(t *testing.T) {
		_, err := commands.NewAddOrderToLoadCommand(kernel.NewUUID(), kernel.UUID{}, services.OptionOverrides{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AddOrderToLoadCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderToLoadCommandIsNotConstructed)
	})
}
