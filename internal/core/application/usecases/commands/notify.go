package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// publishStatusChanged announces one committed transition to the dispatcher.
// Dispatch is fire-and-forget: the event is published on a detached context so
// a cancelled request cannot abort it, and failures are logged, never returned.
func publishStatusChanged(
	ctx context.Context,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
	aggregate *order.Order,
	previous order.Status,
	changedBy *kernel.UUID,
) {
	event := ports.StatusChangedEvent{
		TenantID:    aggregate.TenantID(),
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		FromStatus:  &previous,
		ToStatus:    aggregate.Status(),
		ChangedBy:   changedBy,
		OccurredAt:  time.Now().UTC(),
	}

	if err := notifier.PublishStatusChanged(context.WithoutCancel(ctx), event); err != nil {
		logger.Warn("status change notification failed",
			"orderId", aggregate.ID(),
			"toStatus", aggregate.Status(),
			"error", err,
		)
	}
}
