package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipments/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// pickupReminderSchedule fires every morning at 07:00 server time.
const pickupReminderSchedule = "0 0 7 * * *"

// PickupReminderJob surfaces booked shipments whose pickup date has arrived.
// Read only: it logs the due pickups for the operations team and never
// touches shipment state or the tracking ledger.
type PickupReminderJob struct {
	handler queries.GetDuePickupsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates the morning pickup reminder job.
// Uses GetDuePickupsQueryHandler to find shipments awaiting pickup.
func NewPickupReminderJob(handler queries.GetDuePickupsQueryHandler, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start schedules the reminder to run every morning.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc(pickupReminderSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running daily at 07:00)")
	return nil
}

// Stop stops the pickup reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

func (j *PickupReminderJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetDuePickupsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed to build query", "error", err)
		return
	}

	pickups, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
		return
	}

	if len(pickups) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Shipments awaiting pickup", "count", len(pickups))
	for _, pickup := range pickups {
		j.logger.InfoContext(ctx, "Pickup due",
			"trackingNumber", pickup.TrackingNumber,
			"sender", pickup.SenderName,
			"city", pickup.SenderCity,
			"pickupDate", pickup.PickupDate.Format("2006-01-02"),
		)
	}
}
