package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// ChangeOrderStatusCommandHandler orchestrates a single order transition.
// Loads the aggregate, lets the state machine validate and apply the change,
// and persists the result with its audit entry in one transaction.
// A committed transition is announced to the notification dispatcher;
// dispatch failures are logged and never fail the command.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, drivers, notifier, logger)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // surface as a conflict to the caller
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	drivers    ports.DriverValidator
	notifier   ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for single-order transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	drivers ports.DriverValidator,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		drivers:    drivers,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the transition command and returns the updated aggregate.
// When a driver travels with the command it is validated against the tenant's
// identity directory before the state machine runs; the assignment lands only
// if the transition itself is accepted.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if command.DriverID() != nil {
		ok, err := h.drivers.IsDriver(ctx, command.TenantID(), *command.DriverID())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", order.ErrDriverInvalid, command.DriverID())
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.TenantID(), command.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.Transition(
		command.NewStatus(),
		command.ChangedBy(),
		command.Notes(),
		command.DriverID(),
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, h.notifier, h.logger, aggregate, previous, command.ChangedBy())

	return aggregate, nil
}
