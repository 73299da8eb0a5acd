package queries_test

import (
	"context"
	"testing"
	"time"

	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/model/order"
	"consolidation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindPendingInArea(
	ctx context.Context,
	center kernel.GeoPoint,
	radiusKm float64,
) ([]*order.Order, error) {
	args := m.Called(ctx, center, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// testOrder builds a pending order with a single package of the given weight.
// A negative startHour means no delivery window.
func testOrder(t *testing.T, weightKg float64, startHour, endHour int, fragile bool) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)

	pkg, err := order.NewPackage(kernel.NewUUID(), "parcel", weightKg, 20, 20, 20, fragile)
	require.NoError(t, err)

	var window *kernel.TimeWindow
	if startHour >= 0 {
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		w, windowErr := kernel.NewTimeWindow(
			day.Add(time.Duration(startHour)*time.Hour),
			day.Add(time.Duration(endHour)*time.Hour))
		require.NoError(t, windowErr)
		window = &w
	}

	o, err := order.NewOrder(kernel.NewUUID(), "Main St", location, []order.Package{pkg}, window, "")
	require.NoError(t, err)
	return o
}

func TestNewCanAddOrderToLoadQuery(t *testing.T) {
	t.Run("valid identifiers", func(t *testing.T) {
		loadID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		query, err := queries.NewCanAddOrderToLoadQuery(loadID, orderID, services.OptionOverrides{})

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.LoadID().IsEqual(loadID))
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("zero identifiers are rejected", func(t *testing.T) {
		_, err := queries.NewCanAddOrderToLoadQuery(kernel.UUID{}, kernel.NewUUID(), services.OptionOverrides{})
		assert.Error(t, err)

		_, err = queries.NewCanAddOrderToLoadQuery(kernel.NewUUID(), kernel.UUID{}, services.OptionOverrides{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.CanAddOrderToLoadQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrCanAddOrderToLoadQueryIsNotConstructed)
	})
}

func TestNewDetectLoadConflictsQuery(t *testing.T) {
	t.Run("valid load id", func(t *testing.T) {
		loadID := kernel.NewUUID()

		query, err := queries.NewDetectLoadConflictsQuery(loadID, services.OptionOverrides{})

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.LoadID().IsEqual(loadID))
	})

	t.Run("zero load id is rejected", func(t *testing.T) {
		_, err := queries.NewDetectLoadConflictsQuery(kernel.UUID{}, services.OptionOverrides{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.DetectLoadConflictsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrDetectLoadConflictsQueryIsNotConstructed)
	})
}

func TestNewGetActiveLoadsQuery(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		query := queries.NewGetActiveLoadsQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetActiveLoadsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetActiveLoadsQueryIsNotConstructed)
	})
}
