// Package jobs provides scheduled background tasks for the booking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PickupReminderJob - Runs every morning at 07:00 to log booked shipments
// whose pickup date has arrived. The job is strictly read only; shipment
// state only ever changes through the booking and status update operations.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(duePickupsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
