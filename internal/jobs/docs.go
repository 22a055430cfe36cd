// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that keep the operational view current.
//
// # Available Jobs
//
// 1. StatsSnapshotJob - Runs every fifteen seconds to refresh the
// orders_by_status Prometheus gauge from the database
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(countOrdersHandler, logger)
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
// The snapshot job logs query failures and leaves the gauge at its last
// observed value until the next successful run.
package jobs
