package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyReportJob logs the per-state order counts once a day.
// Runs at 08:00 so the report lands before the workday starts.
type DailyReportJob struct {
	handler queries.GetStateCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyReportJob creates a new job for the daily order report.
// Uses GetStateCountsQueryHandler to read the counts without touching the aggregate.
func NewDailyReportJob(handler queries.GetStateCountsQueryHandler, logger *slog.Logger) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start begins the daily report job to run at 08:00.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 8 * * *", func() {
		ctx := context.Background()

		counts, err := j.handler.Handle(ctx, queries.NewGetStateCountsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily order report")
		for _, c := range counts {
			if c.Count == 0 {
				continue
			}
			j.logger.InfoContext(ctx, "Daily order report entry",
				"state", c.Description, "orders", c.Count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running daily at 08:00)")
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
