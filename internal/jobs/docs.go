// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order and inventory flow.
//
// # Available Jobs
//
// 1. ReorderAlertJob - Runs every five minutes to flag stock positions at or below their reorder point
// 2. StaleOrderJob - Runs every minute to flag submitted orders still waiting for an acknowledgment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reorderAlertHandler, openOrdersHandler, logger)
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
// The reorder alert job runs on "0 */5 * * * *" (every five minutes); the
// stale order job runs on "0 * * * * *" (every minute). Both jobs only read,
// so a missed or doubled run is harmless.
//
// # Error Handling
//
// - Both jobs log query failures and keep their schedule
// - Failed job starts will stop any already running jobs
package jobs
