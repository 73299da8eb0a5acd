package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolidation/internal/core/domain/model/order"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending, order.Consolidated, order.Assigned, order.Routed,
		order.Dispatched, order.InTransit, order.Delivered, order.Failed, order.Cancelled,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			assert.NoError(t, s.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		assert.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Consolidated", order.Consolidated.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Consolidate(t *testing.T) {
	t.Run("pending order can be consolidated", func(t *testing.T) {
		next, err := order.Pending.Consolidate()
		require.NoError(t, err)
		assert.Equal(t, order.Consolidated, next)
	})

	t.Run("consolidated order can move between loads", func(t *testing.T) {
		next, err := order.Consolidated.Consolidate()
		require.NoError(t, err)
		assert.Equal(t, order.Consolidated, next)
	})

	t.Run("downstream states cannot be consolidated", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Assigned, order.Routed, order.Dispatched,
			order.InTransit, order.Delivered, order.Failed, order.Cancelled,
		} {
			_, err := s.Consolidate()
			assert.Error(t, err, "status: %s", s)
		}
	})
}

func TestStatus_Release(t *testing.T) {
	t.Run("consolidated order can be released", func(t *testing.T) {
		next, err := order.Consolidated.Release()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, next)
	})

	t.Run("pending order cannot be released", func(t *testing.T) {
		_, err := order.Pending.Release()
		assert.Error(t, err)
	})

	t.Run("dispatched order cannot be released", func(t *testing.T) {
		_, err := order.Dispatched.Release()
		assert.Error(t, err)
	})
}
