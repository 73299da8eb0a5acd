package load_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
)

func mustLoad(t *testing.T) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID())
	require.NoError(t, err)
	return l
}

func TestNewLoad(t *testing.T) {
	t.Run("valid load starts empty and pending", func(t *testing.T) {
		id := kernel.NewUUID()
		l, err := load.NewLoad(id)

		require.NoError(t, err)
		assert.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.OrderCount())
		assert.InDelta(t, 0, l.TotalWeight(), 0)
		assert.InDelta(t, 0, l.TotalVolume(), 0)
		assert.Equal(t, load.Pending, l.Status())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := load.NewLoad(kernel.UUID{})
		assert.Error(t, err)
	})
}

func TestRestoreLoad(t *testing.T) {
	t.Run("preserves members totals and status", func(t *testing.T) {
		orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		l, err := load.RestoreLoad(kernel.NewUUID(), orderIDs, 35, 0.5, load.Consolidated)

		require.NoError(t, err)
		assert.Equal(t, 2, l.OrderCount())
		assert.InDelta(t, 35, l.TotalWeight(), 0)
		assert.InDelta(t, 0.5, l.TotalVolume(), 0)
		assert.Equal(t, load.Consolidated, l.Status())
		assert.True(t, l.Contains(orderIDs[0]))
		assert.True(t, l.Contains(orderIDs[1]))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := load.RestoreLoad(kernel.NewUUID(), nil, 0, 0, load.Unknown)
		assert.Error(t, err)
	})

	t.Run("rejects invalid member id", func(t *testing.T) {
		_, err := load.RestoreLoad(kernel.NewUUID(), []kernel.UUID{{}}, 0, 0, load.Pending)
		assert.Error(t, err)
	})
}

func TestLoad_Validate(t *testing.T) {
	t.Run("nil load", func(t *testing.T) {
		var l *load.Load
		assert.Equal(t, load.ErrLoadIsNotConstructed, l.Validate())
	})

	t.Run("zero value load", func(t *testing.T) {
		l := &load.Load{}
		assert.Equal(t, load.ErrLoadIsNotConstructed, l.Validate())
	})
}

func TestLoad_AddOrder(t *testing.T) {
	t.Run("appends member and accumulates totals", func(t *testing.T) {
		l := mustLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, l.AddOrder(first, 5, 0.1))
		require.NoError(t, l.AddOrder(second, 10, 0.2))

		assert.Equal(t, 2, l.OrderCount())
		assert.InDelta(t, 15, l.TotalWeight(), 1e-9)
		assert.InDelta(t, 0.3, l.TotalVolume(), 1e-9)
		assert.Equal(t, []kernel.UUID{first, second}, l.OrderIDs())
	})

	t.Run("rejects duplicate member", func(t *testing.T) {
		l := mustLoad(t)
		orderID := kernel.NewUUID()

		require.NoError(t, l.AddOrder(orderID, 5, 0.1))
		err := l.AddOrder(orderID, 5, 0.1)

		assert.ErrorIs(t, err, load.ErrOrderAlreadyInLoad)
		assert.Equal(t, 1, l.OrderCount())
		assert.InDelta(t, 5, l.TotalWeight(), 1e-9)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		l := mustLoad(t)
		assert.Error(t, l.AddOrder(kernel.UUID{}, 5, 0.1))
	})
}

func TestLoad_RemoveOrder(t *testing.T) {
	t.Run("drops member and reduces totals", func(t *testing.T) {
		l := mustLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, l.AddOrder(first, 5, 0.1))
		require.NoError(t, l.AddOrder(second, 10, 0.2))

		require.NoError(t, l.RemoveOrder(first, 5, 0.1))

		assert.Equal(t, 1, l.OrderCount())
		assert.False(t, l.Contains(first))
		assert.True(t, l.Contains(second))
		assert.InDelta(t, 10, l.TotalWeight(), 1e-9)
		assert.InDelta(t, 0.2, l.TotalVolume(), 1e-9)
	})

	t.Run("add then remove restores empty totals", func(t *testing.T) {
		l := mustLoad(t)
		orderID := kernel.NewUUID()

		require.NoError(t, l.AddOrder(orderID, 7.5, 0.3))
		require.NoError(t, l.RemoveOrder(orderID, 7.5, 0.3))

		assert.True(t, l.IsEmpty())
		assert.InDelta(t, 0, l.TotalWeight(), 1e-9)
		assert.InDelta(t, 0, l.TotalVolume(), 1e-9)
	})

	t.Run("remove then re-add restores pre-removal totals", func(t *testing.T) {
		l := mustLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, l.AddOrder(first, 5, 0.1))
		require.NoError(t, l.AddOrder(second, 10, 0.2))

		weightBefore := l.TotalWeight()
		volumeBefore := l.TotalVolume()
		countBefore := l.OrderCount()

		require.NoError(t, l.RemoveOrder(second, 10, 0.2))
		require.NoError(t, l.AddOrder(second, 10, 0.2))

		assert.Equal(t, countBefore, l.OrderCount())
		assert.True(t, l.Contains(first))
		assert.True(t, l.Contains(second))
		assert.InDelta(t, weightBefore, l.TotalWeight(), 1e-9)
		assert.InDelta(t, volumeBefore, l.TotalVolume(), 1e-9)
	})

	t.Run("floors totals at zero", func(t *testing.T) {
		l, err := load.RestoreLoad(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, 3, 0.1, load.Pending)
		require.NoError(t, err)
		member := l.OrderIDs()[0]

		require.NoError(t, l.RemoveOrder(member, 5, 0.5))

		assert.InDelta(t, 0, l.TotalWeight(), 0)
		assert.InDelta(t, 0, l.TotalVolume(), 0)
	})

	t.Run("rejects unknown member", func(t *testing.T) {
		l := mustLoad(t)
		err := l.RemoveOrder(kernel.NewUUID(), 5, 0.1)
		assert.ErrorIs(t, err, load.ErrOrderNotInLoad)
	})
}

func TestLoad_Consolidate(t *testing.T) {
	t.Run("pending load can be consolidated", func(t *testing.T) {
		l := mustLoad(t)
		require.NoError(t, l.AddOrder(kernel.NewUUID(), 5, 0.1))

		require.NoError(t, l.Consolidate())
		assert.Equal(t, load.Consolidated, l.Status())
	})

	t.Run("consolidated load cannot be consolidated again", func(t *testing.T) {
		l := mustLoad(t)
		require.NoError(t, l.Consolidate())
		assert.Error(t, l.Consolidate())
	})
}

func TestLoad_OrderIDs_DefensiveCopy(t *testing.T) {
	l := mustLoad(t)
	member := kernel.NewUUID()
	require.NoError(t, l.AddOrder(member, 5, 0.1))

	returned := l.OrderIDs()
	returned[0] = kernel.NewUUID()

	assert.True(t, l.Contains(member))
	assert.True(t, l.OrderIDs()[0].IsEqual(member))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []load.Status{load.Pending, load.Consolidated, load.Assigned, load.Dispatched, load.Completed} {
		assert.NoError(t, s.Validate(), "status: %s", s)
	}
	assert.Error(t, load.Unknown.Validate())
	assert.Error(t, load.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", load.Pending.String())
	assert.Equal(t, "Completed", load.Completed.String())
	assert.Equal(t, "Unknown", load.Status(42).String())
}
