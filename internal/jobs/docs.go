// Package jobs provides scheduled background tasks for the order verification
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the verification process.
//
// # Available Jobs
//
// 1. VerificationReminderJob - Runs every minute to surface orders idle in a
// verification status beyond the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager, err := jobs.NewJobManager(overdueHandler, 4*time.Hour, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
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
// The reminder job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. Reminders are advisory, so minute granularity
// is plenty.
//
// # Error Handling
//
// - The reminder job logs query failures and keeps running
// - Overdue orders are reported at warning level, one record per order
// - Failed job starts are reported to the caller
package jobs
