// Package jobs provides scheduled background tasks for the consolidation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the consolidation service.
//
// # Available Jobs
//
// 1. ConsolidationJob - Runs every minute to sweep the depot area and group pending orders into loads
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(consolidateOrdersHandler, depot, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The consolidation job uses the cron expression "* * * * *" which means it
// runs every minute. Orders created between runs simply wait for the next
// sweep; the HTTP API allows forcing a run at any time.
//
// # Error Handling
//
// - The consolidation job logs failures and keeps its schedule; a failed
//   sweep rolls back atomically and is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
