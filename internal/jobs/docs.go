// Package jobs provides scheduled background tasks for the order platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations over the order store.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Sweeps every 15 minutes for orders still delivering
// past their requested delivery date and publishes an overdue alert for each.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(notifyOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The overdue sweep logs a failure to read the order store and tries again
//   on the next tick; publish failures are handled per order inside the sweep.
// - Failed job starts will stop any already running jobs.
package jobs
