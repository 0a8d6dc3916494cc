package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueReportSpec runs the report at the top of every minute.
const DefaultOverdueReportSpec = "0 * * * * *"

// OverdueCounter is satisfied by queries.CountOverdueServiceOrdersQueryHandler.
type OverdueCounter interface {
	Handle(ctx context.Context, query queries.CountOverdueServiceOrdersQuery) (queries.CountOverdueServiceOrdersQueryResponse, error)
}

// OverdueReportJob periodically logs how many open orders are past the
// overdue threshold.
type OverdueReportJob struct {
	counter   OverdueCounter
	threshold time.Duration
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueReportJob creates the job. An empty spec uses DefaultOverdueReportSpec.
func NewOverdueReportJob(
	counter OverdueCounter,
	threshold time.Duration,
	spec string,
	logger *slog.Logger,
) *OverdueReportJob {
	if spec == "" {
		spec = DefaultOverdueReportSpec
	}
	return &OverdueReportJob{
		counter:   counter,
		threshold: threshold,
		spec:      spec,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_report_job"),
	}
}

// Start schedules the report.
func (j *OverdueReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue report job started", "spec", j.spec)
	return nil
}

// Run produces a single report.
func (j *OverdueReportJob) Run(ctx context.Context) {
	query, err := queries.NewCountOverdueServiceOrdersQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue report job misconfigured", "error", err)
		return
	}

	response, err := j.counter.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue report job failed", "error", err)
		return
	}

	level := slog.LevelInfo
	if response.Count > 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Overdue service orders",
		"count", response.Count,
		"created_before", response.Cutoff.Format(time.RFC3339))
}

// Stop waits for a running report to finish.
func (j *OverdueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue report job stopped")
}
