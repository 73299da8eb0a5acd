package commands_test

import (
	"context"
	"testing"
	"time"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/model/order"
	"consolidation/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// pendingOrder builds a pending order with one package of the given weight.
// startHour below zero means no delivery window.
func pendingOrder(t *testing.T, weightKg float64, startHour, endHour int) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)

	pkg, err := order.NewPackage(kernel.NewUUID(), "parcel", weightKg, 20, 20, 20, false)
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

func testCenter(t *testing.T) kernel.GeoPoint {
	t.Helper()
	center, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	return center
}
