// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the order lifecycle requires.
//
// # Available Jobs
//
// 1. IngestionJob - Polls the mailbox every ten minutes for new purchase documents
// 2. PlantReminderJob - Runs hourly to remind the plant about unanswered dispatches
// 3. LogisticsReminderJob - Runs every six hours to flag deliveries two days out
// 4. PaymentSweepJob - Runs daily at 09:00 to flag overdue payment proofs
// 5. DailyReportJob - Runs daily at 08:00 to log the per-state order counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(ingestion, plant, logistics, payment, report, logger)
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
// - Each job body isolates its own failures; a failing sweep only logs
// - One order failing inside a sweep never stops the rest of the batch
// - Failed job starts will stop any already running jobs
package jobs
