package jobs

import (
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ingestionJob         *IngestionJob
	plantReminderJob     *PlantReminderJob
	logisticsReminderJob *LogisticsReminderJob
	paymentSweepJob      *PaymentSweepJob
	dailyReportJob       *DailyReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	ingestionHandler *commands.ProcessInboundDocumentsHandler,
	plantReminderHandler *commands.SendPlantRemindersHandler,
	logisticsReminderHandler *commands.SendLogisticsRemindersHandler,
	paymentSweepHandler *commands.FlagAwaitingPaymentProofHandler,
	stateCountsHandler queries.GetStateCountsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ingestionJob:         NewIngestionJob(ingestionHandler, logger),
		plantReminderJob:     NewPlantReminderJob(plantReminderHandler, logger),
		logisticsReminderJob: NewLogisticsReminderJob(logisticsReminderHandler, logger),
		paymentSweepJob:      NewPaymentSweepJob(paymentSweepHandler, logger),
		dailyReportJob:       NewDailyReportJob(stateCountsHandler, logger),
	}
}

// StartAll starts all scheduled jobs in order.
// Returns an error if any job fails to start, stopping the ones already running.
func (jm *JobManager) StartAll() error {
	var started []interface{ Stop() }

	stopStarted := func() {
		for i := len(started) - 1; i >= 0; i-- {
			started[i].Stop()
		}
	}

	if err := jm.ingestionJob.Start(); err != nil {
		return fmt.Errorf("failed to start ingestion job: %w", err)
	}
	started = append(started, jm.ingestionJob)

	if err := jm.plantReminderJob.Start(); err != nil {
		stopStarted()
		return fmt.Errorf("failed to start plant reminder job: %w", err)
	}
	started = append(started, jm.plantReminderJob)

	if err := jm.logisticsReminderJob.Start(); err != nil {
		stopStarted()
		return fmt.Errorf("failed to start logistics reminder job: %w", err)
	}
	started = append(started, jm.logisticsReminderJob)

	if err := jm.paymentSweepJob.Start(); err != nil {
		stopStarted()
		return fmt.Errorf("failed to start payment sweep job: %w", err)
	}
	started = append(started, jm.paymentSweepJob)

	if err := jm.dailyReportJob.Start(); err != nil {
		stopStarted()
		return fmt.Errorf("failed to start daily report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyReportJob.Stop()
	jm.paymentSweepJob.Stop()
	jm.logisticsReminderJob.Stop()
	jm.plantReminderJob.Stop()
	jm.ingestionJob.Stop()
}
