package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/order"
)

func mustGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	return point
}

func mustOrder(t *testing.T, timeWindow *kernel.TimeWindow) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Unter den Linden 1",
		mustGeoPoint(t),
		[]order.Package{mustPackage(t, 5, 20, 20, 20, false)},
		timeWindow,
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending", func(t *testing.T) {
		o := mustOrder(t, nil)

		assert.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "Unter den Linden 1", o.Street())
		assert.False(t, o.HasTimeWindow())
		assert.False(t, o.HasSpecialInstructions())
	})

	t.Run("order with time window", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
		require.NoError(t, err)

		o := mustOrder(t, &window)
		assert.True(t, o.HasTimeWindow())
		assert.Equal(t, start, o.TimeWindow().Start())
	})

	t.Run("empty street", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", mustGeoPoint(t),
			[]order.Package{mustPackage(t, 5, 20, 20, 20, false)}, nil, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrStreetIsRequired)
	})

	t.Run("no packages", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "Main St", mustGeoPoint(t), nil, nil, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrPackagesAreRequired)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, "Main St", mustGeoPoint(t),
			[]order.Package{mustPackage(t, 5, 20, 20, 20, false)}, nil, "")
		assert.Error(t, err)
	})

	t.Run("invalid location", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "Main St", kernel.GeoPoint{},
			[]order.Package{mustPackage(t, 5, 20, 20, 20, false)}, nil, "")
		assert.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("preserves persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "Main St", mustGeoPoint(t),
			[]order.Package{mustPackage(t, 5, 20, 20, 20, false)},
			nil, "leave at door", order.Consolidated)

		require.NoError(t, err)
		assert.Equal(t, order.Consolidated, o.Status())
		assert.True(t, o.HasSpecialInstructions())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "Main St", mustGeoPoint(t),
			[]order.Package{mustPackage(t, 5, 20, 20, 20, false)},
			nil, "", order.Unknown)
		assert.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero value order", func(t *testing.T) {
		o := &order.Order{}
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Totals(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), "Main St", mustGeoPoint(t),
		[]order.Package{
			mustPackage(t, 5, 100, 100, 100, false),
			mustPackage(t, 10, 50, 40, 30, false),
		}, nil, "")
	require.NoError(t, err)

	assert.InDelta(t, 15, o.TotalWeight(), 1e-9)
	assert.InDelta(t, 1.06, o.TotalVolume(), 1e-9)
}

func TestOrder_Packages_DefensiveCopy(t *testing.T) {
	original := []order.Package{mustPackage(t, 5, 20, 20, 20, false)}
	o, err := order.NewOrder(kernel.NewUUID(), "Main St", mustGeoPoint(t), original, nil, "")
	require.NoError(t, err)

	returned := o.Packages()
	returned[0] = order.Package{}

	assert.NoError(t, o.Packages()[0].Validate())
}

func TestOrder_ConsolidateAndRelease(t *testing.T) {
	t.Run("pending to consolidated and back", func(t *testing.T) {
		o := mustOrder(t, nil)

		require.NoError(t, o.Consolidate())
		assert.Equal(t, order.Consolidated, o.Status())

		require.NoError(t, o.Release())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("consolidated order can move between loads", func(t *testing.T) {
		o := mustOrder(t, nil)
		require.NoError(t, o.Consolidate())
		assert.NoError(t, o.Consolidate())
	})

	t.Run("pending order cannot be released", func(t *testing.T) {
		o := mustOrder(t, nil)
		assert.Error(t, o.Release())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := mustOrder(t, nil)
	b := mustOrder(t, nil)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
