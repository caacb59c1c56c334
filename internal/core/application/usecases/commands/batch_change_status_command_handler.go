package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// BatchChangeStatusCommandHandler applies one transition to many orders.
// Orders are loaded in a single fetch and processed by a bounded worker pool,
// each in its own transaction: one order's rejection or version conflict never
// touches a sibling. Per-order outcomes come back in the supplied ID order.
//
// Example:
//
//	handler := NewBatchChangeStatusCommandHandler(uowFactory, drivers, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // batch-level failure, nothing was processed
//	}
//	log.Printf("succeeded %d of %d", result.Succeeded, result.Processed)
type BatchChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	drivers    ports.DriverValidator
	notifier   ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewBatchChangeStatusCommandHandler creates a handler for batch transitions.
func NewBatchChangeStatusCommandHandler(
	uowFactory OrderUoWFactory,
	drivers ports.DriverValidator,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) BatchChangeStatusCommandHandler {
	return BatchChangeStatusCommandHandler{
		uowFactory: uowFactory,
		drivers:    drivers,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the batch transition command.
// A driver travelling with the command is validated once up front; an invalid
// driver is recorded per order as a driver failure, leaving every order's
// status unchanged. An error return means the batch never started; everything
// after that is reported per order.
func (h BatchChangeStatusCommandHandler) Handle(
	ctx context.Context,
	command BatchChangeStatusCommand,
) (BatchOperationResult, error) {
	if err := command.Validate(); err != nil {
		return BatchOperationResult{}, err
	}

	driverInvalid := false
	if command.DriverID() != nil {
		ok, err := h.drivers.IsDriver(ctx, command.TenantID(), *command.DriverID())
		if err != nil {
			return BatchOperationResult{}, err
		}
		driverInvalid = !ok
	}

	runner := newBatchRunner(h.uowFactory, func(ctx context.Context, aggregate *order.Order, previous order.Status) {
		publishStatusChanged(ctx, h.notifier, h.logger, aggregate, previous, command.ChangedBy())
	})
	if driverInvalid {
		runner = runner.withPrecheck(func(_ context.Context, _ *order.Order) error {
			return fmt.Errorf("%w: %s", order.ErrDriverInvalid, command.DriverID())
		})
	}

	return runner.run(ctx, command.TenantID(), command.OrderIDs(),
		func(_ context.Context, aggregate *order.Order) error {
			return aggregate.Transition(
				command.NewStatus(),
				command.ChangedBy(),
				command.Notes(),
				command.DriverID(),
			)
		},
	)
}
