package jobs

import (
	"context"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOrderStatsSchedule runs the statistics job every five minutes.
const DefaultOrderStatsSchedule = "0 */5 * * * *"

type CountOrdersByStatusHandler interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// OrderStatsJob periodically logs how many orders sit in each active status.
// Operators use it to spot a stuck kitchen or a courier shortage.
type OrderStatsJob struct {
	handler  CountOrdersByStatusHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewOrderStatsJob(handler CountOrdersByStatusHandler, schedule string, logger *zap.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}

	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "order_stats_job")),
	}
}

func (j *OrderStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order stats job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running iteration to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order stats job stopped")
}

// Run performs one iteration.
func (j *OrderStatsJob) Run(ctx context.Context) {
	query, err := queries.NewCountOrdersByStatusQuery(activeStatuses()...)
	if err != nil {
		j.logger.Error("Order stats job failed", zap.Error(err))
		return
	}

	counts, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error("Order stats job failed", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(counts)+1)
	var total int64
	for _, s := range query.Statuses() {
		fields = append(fields, zap.Int64(s.String(), counts[s]))
		total += counts[s]
	}
	fields = append(fields, zap.Int64("active_total", total))

	j.logger.Info("Active orders by status", fields...)
}

func activeStatuses() []order.Status {
	active := make([]order.Status, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		if !s.IsTerminal() {
			active = append(active, s)
		}
	}
	return active
}
