package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// BatchCancelOrdersCommandHandler cancels many orders with per-order isolation.
// Orders that have already left the cancellable stage of the lifecycle are
// filtered out before any transaction is opened and reported as not
// cancellable; the rest are cancelled one transaction each.
//
// Example:
//
//	handler := NewBatchCancelOrdersCommandHandler(uowFactory, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	for _, r := range result.Results {
//	    if !r.Success {
//	        log.Printf("order %s: %s", r.OrderID, r.Error)
//	    }
//	}
type BatchCancelOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewBatchCancelOrdersCommandHandler creates a handler for batch cancellations.
func NewBatchCancelOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) BatchCancelOrdersCommandHandler {
	return BatchCancelOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the batch cancellation command.
// The reason travels into each order's cancel reason and audit entry.
func (h BatchCancelOrdersCommandHandler) Handle(
	ctx context.Context,
	command BatchCancelOrdersCommand,
) (BatchOperationResult, error) {
	if err := command.Validate(); err != nil {
		return BatchOperationResult{}, err
	}

	runner := newBatchRunner(h.uowFactory, func(ctx context.Context, aggregate *order.Order, previous order.Status) {
		publishStatusChanged(ctx, h.notifier, h.logger, aggregate, previous, command.CancelledBy())
	}).withPrecheck(func(_ context.Context, aggregate *order.Order) error {
		if !aggregate.Status().IsCancellable() {
			return fmt.Errorf("%w: %s", order.ErrNotCancellable, aggregate.Status())
		}
		return nil
	})

	return runner.run(ctx, command.TenantID(), command.OrderIDs(),
		func(_ context.Context, aggregate *order.Order) error {
			return aggregate.Transition(
				order.StatusCancelled,
				command.CancelledBy(),
				command.Reason(),
				nil,
			)
		},
	)
}
