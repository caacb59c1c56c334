package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// NotifyOverdueDeliveriesCommandHandler finds orders still delivering past
// their requested delivery date and publishes an overdue event for each.
// The sweep is read-only: order state is never modified, failed publishes are
// logged and the sweep continues with the next order.
//
// Example:
//
//	handler := NewNotifyOverdueDeliveriesCommandHandler(uowFactory, notifier, logger)
//	cmd := NewNotifyOverdueDeliveriesCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("overdue sweep failed: %v", err)
//	}
type NotifyOverdueDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewNotifyOverdueDeliveriesCommandHandler creates a handler for the overdue sweep.
func NewNotifyOverdueDeliveriesCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) NotifyOverdueDeliveriesCommandHandler {
	return NotifyOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the overdue sweep command.
// Returns an error only when the overdue orders cannot be read; publish
// failures are per-order and logged.
func (h NotifyOverdueDeliveriesCommandHandler) Handle(
	ctx context.Context,
	command NotifyOverdueDeliveriesCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	repo := h.uowFactory.Create().OrderRepository()

	overdue, err := repo.GetOverdueDelivering(ctx, now)
	if err != nil {
		return err
	}

	for _, aggregate := range overdue {
		event := ports.DeliveryOverdueEvent{
			TenantID:              aggregate.TenantID(),
			OrderID:               aggregate.ID(),
			OrderNumber:           aggregate.OrderNumber(),
			DriverID:              aggregate.Driver(),
			RequestedDeliveryDate: *aggregate.RequestedDeliveryDate(),
			DetectedAt:            now,
		}

		if err := h.notifier.PublishDeliveryOverdue(ctx, event); err != nil {
			h.logger.Warn("overdue delivery notification failed",
				"orderId", aggregate.ID(),
				"orderNumber", aggregate.OrderNumber(),
				"error", err,
			)
		}
	}

	return nil
}
