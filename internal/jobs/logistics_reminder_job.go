package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LogisticsReminderJob manages the scheduled logistics heads-up sweep.
// Runs every six hours to flag deliveries happening two days out.
type LogisticsReminderJob struct {
	handler *commands.SendLogisticsRemindersHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLogisticsReminderJob creates a new job for logistics reminders.
// Uses SendLogisticsRemindersHandler to sweep upcoming deliveries every six hours.
func NewLogisticsReminderJob(handler *commands.SendLogisticsRemindersHandler, logger *slog.Logger) *LogisticsReminderJob {
	return &LogisticsReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "logistics_reminder_job"),
	}
}

// Start begins the logistics reminder job to run every six hours.
func (j *LogisticsReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 */6 * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Logistics reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Logistics reminder job started (running every six hours)")
	return nil
}

// Stop stops the logistics reminder job.
func (j *LogisticsReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Logistics reminder job stopped")
}
