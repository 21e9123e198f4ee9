package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PlantReminderJob manages the scheduled plant follow-up sweep.
// Runs hourly to remind the plant about dispatches unanswered for a day.
type PlantReminderJob struct {
	handler *commands.SendPlantRemindersHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPlantReminderJob creates a new job for plant follow-up reminders.
// Uses SendPlantRemindersHandler to sweep unanswered dispatches every hour.
func NewPlantReminderJob(handler *commands.SendPlantRemindersHandler, logger *slog.Logger) *PlantReminderJob {
	return &PlantReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "plant_reminder_job"),
	}
}

// Start begins the plant reminder job to run every hour.
func (j *PlantReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Plant reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Plant reminder job started (running every hour)")
	return nil
}

// Stop stops the plant reminder job.
func (j *PlantReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Plant reminder job stopped")
}
