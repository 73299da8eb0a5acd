package cmd

import (
	"consolidation/internal/adapters/out/postgres"
	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	defaults   services.ConsolidationOptions
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		defaults:   services.DefaultConsolidationOptions(),
	}
}

func (c *CompositionRoot) CreateConsolidateOrdersCommandHandler() commands.ConsolidateOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConsolidateOrdersCommandHandler(f, services.NewLoadBuilder(), c.defaults)
}

func (c *CompositionRoot) CreateAddOrderToLoadCommandHandler() commands.AddOrderToLoadCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderToLoadCommandHandler(f, c.defaults)
}

func (c *CompositionRoot) CreateRemoveOrderFromLoadCommandHandler() commands.RemoveOrderFromLoadCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderFromLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveLoadsQueryHandler() queries.GetActiveLoadsQueryHandler {
	return queries.NewGetActiveLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCanAddOrderToLoadQueryHandler() queries.CanAddOrderToLoadQueryHandler {
	// Read-only path: repositories outside a transaction use the main connection.
	uow := c.uowFactory.Create()
	return queries.NewCanAddOrderToLoadQueryHandler(
		uow.LoadRepository(),
		uow.OrderRepository(),
		c.defaults,
	)
}

func (c *CompositionRoot) CreateDetectLoadConflictsQueryHandler() queries.DetectLoadConflictsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewDetectLoadConflictsQueryHandler(
		uow.LoadRepository(),
		uow.OrderRepository(),
		services.NewConflictDetector(),
		c.defaults,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
