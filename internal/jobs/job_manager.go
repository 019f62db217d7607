package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"brickmarket/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	verificationReminderJob *VerificationReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and job settings as dependencies to wire up execution.
func NewJobManager(
	overdueHandler queries.GetOverdueVerificationOrdersQueryHandler,
	reminderAge time.Duration,
	logger *slog.Logger,
) (*JobManager, error) {
	verificationReminderJob, err := NewVerificationReminderJob(overdueHandler, reminderAge, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification reminder job: %w", err)
	}

	return &JobManager{
		verificationReminderJob: verificationReminderJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.verificationReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start verification reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.verificationReminderJob.Stop()
}
