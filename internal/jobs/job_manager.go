package jobs

import (
	"fmt"
	"log/slog"

	"cannacommerce/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reorderAlertJob *ReorderAlertJob
	staleOrderJob   *StaleOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	reorderAlertHandler queries.GetItemsBelowReorderPointQueryHandler,
	openOrdersHandler queries.GetOpenOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reorderAlertJob: NewReorderAlertJob(reorderAlertHandler, logger),
		staleOrderJob:   NewStaleOrderJob(openOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reorderAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start reorder alert job: %w", err)
	}

	if err := jm.staleOrderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reorderAlertJob.Stop()
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reorderAlertJob.Stop()
	jm.staleOrderJob.Stop()
}
