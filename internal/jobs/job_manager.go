package jobs

import (
	"fmt"
	"log/slog"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consolidationJob *ConsolidationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	consolidateOrdersHandler commands.ConsolidateOrdersCommandHandler,
	depot kernel.GeoPoint,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		consolidationJob: NewConsolidationJob(consolidateOrdersHandler, depot, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.consolidationJob.Start(); err != nil {
		return fmt.Errorf("failed to start consolidation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.consolidationJob.Stop()
}
