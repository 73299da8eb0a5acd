// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: validation, transaction management,
// and persistence through a unit of work.
package commands

import (
	"context"

	"consolidation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions keep a load and its member orders' statuses changing
// atomically.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// UoW manages transactions across the load and order aggregates. Every
	// consolidation command touches both: loads change membership while
	// member orders flip between pending and consolidated.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   loadRepo := uow.LoadRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances, one per command execution.
	UoWFactory interface {
		Create() UoW
	}
)
