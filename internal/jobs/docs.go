// Package jobs provides scheduled background tasks for the rate service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the service needs.
//
// # Available Jobs
//
// 1. QuotePruningJob - Runs hourly to delete recorded quotes older than the
// configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pruneQuotesHandler, retention, logger)
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
// Pruning failures are logged and retried on the next tick; a failed run
// never stops the schedule.
package jobs
