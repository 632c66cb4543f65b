// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields with seconds first, for example "0 */5 * * * *".
//
// # Available Jobs
//
// 1. SnapshotJob - Saves the entity stores to the configured snapshot store
// 2. DailyReportJob - Logs how many of today's shipments are in each status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewSnapshotJob(saveSnapshotHandler, "0 */5 * * * *", logger),
//		jobs.NewDailyReportJob(reportHandler, "0 0 6 * * *", time.Now, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
