package jobs

import (
	"context"
	"log/slog"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// ConsolidationJob manages the scheduled consolidation of pending orders.
// Runs every minute to sweep the depot area and form loads from whatever
// pending orders have accumulated since the last run.
type ConsolidationJob struct {
	handler commands.ConsolidateOrdersCommandHandler
	depot   kernel.GeoPoint
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConsolidationJob creates a new job for periodic order consolidation.
// The depot is the geographic center of the sweep; thresholds come from the
// handler's defaults.
func NewConsolidationJob(
	handler commands.ConsolidateOrdersCommandHandler,
	depot kernel.GeoPoint,
	logger *slog.Logger,
) *ConsolidationJob {
	return &ConsolidationJob{
		handler: handler,
		depot:   depot,
		cron:    cron.New(),
		logger:  logger.With("component", "consolidation_job"),
	}
}

// Start begins the consolidation job to run every minute.
func (j *ConsolidationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewConsolidateOrdersCommand(j.depot, services.OptionOverrides{})
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Consolidation job misconfigured", "error", cmdErr)
			return
		}

		loads, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Consolidation job failed", "error", handleErr)
			return
		}

		if len(loads) > 0 {
			j.logger.InfoContext(ctx, "Consolidation sweep formed loads", "count", len(loads))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consolidation job started (running every minute)")
	return nil
}

// Stop stops the consolidation job.
func (j *ConsolidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consolidation job stopped")
}
