package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// DailyReportJob logs a summary of the shipments planned for the current day.
type DailyReportJob struct {
	handler  queries.GetShipmentsByPeriodQueryHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDailyReportJob(
	handler queries.GetShipmentsByPeriodQueryHandler,
	schedule string,
	now func() time.Time,
	logger *slog.Logger,
) *DailyReportJob {
	return &DailyReportJob{
		handler:  handler,
		schedule: schedule,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_report_job"),
	}
}

func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) })
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

// Run logs one report for today.
func (j *DailyReportJob) Run(ctx context.Context) {
	today := kernel.DateOf(j.now())

	result, err := j.handler.Handle(ctx, queries.NewGetShipmentsByPeriodQuery(today, today))
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		return
	}

	counts := make(map[shipment.Status]int)
	for _, s := range result {
		counts[s.Status]++
	}

	j.logger.InfoContext(ctx, "Daily shipments report",
		"date", today.String(),
		"total", len(result),
		"planned", counts[shipment.Planned],
		"in_transit", counts[shipment.InTransit],
		"delivered", counts[shipment.Delivered],
		"cancelled", counts[shipment.Cancelled],
	)
}

func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
