package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freight/internal/core/application/usecases/commands"
)

// SnapshotJob periodically writes the entity stores to durable storage so a
// crash loses at most one interval of work.
type SnapshotJob struct {
	handler  commands.SaveSnapshotCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotJob creates a job that runs handler on the given six-field cron
// schedule (seconds first).
func NewSnapshotJob(handler commands.SaveSnapshotCommandHandler, schedule string, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_job"),
	}
}

// Start schedules the job. An invalid schedule is reported and nothing runs.
func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) })
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", j.schedule)
	return nil
}

// Run saves one snapshot. Failures are logged; the next tick tries again.
func (j *SnapshotJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewSaveSnapshotCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Snapshot saved")
}

// Stop stops the scheduler and waits for a running save to finish.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
