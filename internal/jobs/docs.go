// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// OrderStatsJob logs the number of orders in every non-terminal status, every
// five minutes by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOrderStatsJob(countHandler, cfg.StatsJobSchedule, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
package jobs
