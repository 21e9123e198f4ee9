package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// IngestionJob manages the scheduled polling of the shared mailbox.
// Runs every ten minutes to turn unread purchase documents into orders.
type IngestionJob struct {
	handler *commands.ProcessInboundDocumentsHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewIngestionJob creates a new job for ingesting purchase documents.
// Uses ProcessInboundDocumentsHandler to process the mailbox every ten minutes.
func NewIngestionJob(handler *commands.ProcessInboundDocumentsHandler, logger *slog.Logger) *IngestionJob {
	return &IngestionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ingestion_job"),
	}
}

// Start begins the ingestion job to run every ten minutes.
func (j *IngestionJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Ingestion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ingestion job started (running every ten minutes)")
	return nil
}

// Stop stops the ingestion job.
func (j *IngestionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ingestion job stopped")
}
