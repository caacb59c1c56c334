package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
)

// overdueSweepSchedule runs the sweep every 15 minutes. Overdue detection is a
// follow-up signal for dispatchers, not a real-time alert, so minute-level
// latency is acceptable.
const overdueSweepSchedule = "0 */15 * * * *"

// OverdueDeliveryJob periodically sweeps for orders still delivering past
// their requested delivery date and publishes an overdue alert for each.
type OverdueDeliveryJob struct {
	handler commands.NotifyOverdueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates the overdue delivery sweep job.
func NewOverdueDeliveryJob(
	handler commands.NotifyOverdueDeliveriesCommandHandler,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start schedules the sweep and begins execution.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewNotifyOverdueDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every 15 minutes)")
	return nil
}

// Stop stops the sweep job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
