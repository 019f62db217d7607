package jobs

import (
	"context"
	"log/slog"
	"time"

	"brickmarket/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// VerificationReminderJob periodically surfaces orders stuck in the
// verification phase. It only reports; admins decide whether to retry a call
// or reject the order.
type VerificationReminderJob struct {
	handler queries.GetOverdueVerificationOrdersQueryHandler
	query   queries.GetOverdueVerificationOrdersQuery
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVerificationReminderJob creates a job that reports orders idle in a
// verification status for at least the given age. Returns an error if the age
// is not positive.
func NewVerificationReminderJob(
	handler queries.GetOverdueVerificationOrdersQueryHandler,
	age time.Duration,
	logger *slog.Logger,
) (*VerificationReminderJob, error) {
	query, err := queries.NewGetOverdueVerificationOrdersQuery(age)
	if err != nil {
		return nil, err
	}

	return &VerificationReminderJob{
		handler: handler,
		query:   query,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "verification_reminder_job"),
	}, nil
}

// Start begins the verification reminder job to run every minute.
func (j *VerificationReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		overdue, err := j.handler.Handle(ctx, j.query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Verification reminder job failed", "error", err)
			return
		}

		for _, stale := range overdue {
			j.logger.WarnContext(ctx, "Order stuck in verification",
				"order_id", stale.ID.String(),
				"status", stale.Status.String(),
				"contact_attempts", stale.ContactAttempts,
				"idle", time.Since(stale.UpdatedAt).Round(time.Minute).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Verification reminder job started (running every minute)")
	return nil
}

// Stop stops the verification reminder job.
func (j *VerificationReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Verification reminder job stopped")
}
