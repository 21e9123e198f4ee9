package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentSweepJob manages the scheduled payment proof check.
// Runs daily at 09:00 to flag invoices whose payment proof is overdue.
type PaymentSweepJob struct {
	handler *commands.FlagAwaitingPaymentProofHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentSweepJob creates a new job for flagging overdue payment proofs.
// Uses FlagAwaitingPaymentProofHandler to sweep registered invoices daily.
func NewPaymentSweepJob(handler *commands.FlagAwaitingPaymentProofHandler, logger *slog.Logger) *PaymentSweepJob {
	return &PaymentSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_sweep_job"),
	}
}

// Start begins the payment sweep job to run daily at 09:00.
func (j *PaymentSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 9 * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment sweep job started (running daily at 09:00)")
	return nil
}

// Stop stops the payment sweep job.
func (j *PaymentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment sweep job stopped")
}
