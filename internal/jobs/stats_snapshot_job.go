package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fleetboard/internal/core/application/usecases/queries"
	"fleetboard/internal/observability"
)

// StatsSnapshotJob periodically reads the per-status order counts and pushes
// them into the orders_by_status gauge, so the dashboard's Prometheus view
// stays current without instrumenting every write path.
type StatsSnapshotJob struct {
	handler queries.CountOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsSnapshotJob creates a job that refreshes order statistics every
// fifteen seconds.
func NewStatsSnapshotJob(handler queries.CountOrdersByStatusQueryHandler, logger *slog.Logger) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_snapshot_job"),
	}
}

// Start begins the snapshot job on a fifteen-second schedule.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		counts, err := j.handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for status, count := range counts {
			observability.OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
			attrs = append(attrs, status.String(), count)
		}
		j.logger.DebugContext(ctx, "Order status snapshot", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (running every 15 seconds)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
