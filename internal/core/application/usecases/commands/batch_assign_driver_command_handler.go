package commands

import (
	"context"
	"fmt"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// BatchAssignDriverCommandHandler stamps one driver onto many orders.
// The driver is validated against the tenant's identity directory once, before
// any order is touched. Assignment never changes a status, so no notifications
// are dispatched; terminal orders reject the stamp per order.
//
// Example:
//
//	handler := NewBatchAssignDriverCommandHandler(uowFactory, drivers)
//	result, err := handler.Handle(ctx, cmd)
type BatchAssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
	drivers    ports.DriverValidator
}

// NewBatchAssignDriverCommandHandler creates a handler for batch driver assignment.
func NewBatchAssignDriverCommandHandler(
	uowFactory OrderUoWFactory,
	drivers ports.DriverValidator,
) BatchAssignDriverCommandHandler {
	return BatchAssignDriverCommandHandler{
		uowFactory: uowFactory,
		drivers:    drivers,
	}
}

// Handle processes the batch assignment command.
// The identity is validated once up front; one that is not a valid driver of
// the tenant is recorded per order as a driver failure, leaving every order
// untouched.
func (h BatchAssignDriverCommandHandler) Handle(
	ctx context.Context,
	command BatchAssignDriverCommand,
) (BatchOperationResult, error) {
	if err := command.Validate(); err != nil {
		return BatchOperationResult{}, err
	}

	ok, err := h.drivers.IsDriver(ctx, command.TenantID(), command.DriverID())
	if err != nil {
		return BatchOperationResult{}, err
	}

	runner := newBatchRunner(h.uowFactory, nil)
	if !ok {
		runner = runner.withPrecheck(func(_ context.Context, _ *order.Order) error {
			return fmt.Errorf("%w: %s", order.ErrDriverInvalid, command.DriverID())
		})
	}

	return runner.run(ctx, command.TenantID(), command.OrderIDs(),
		func(_ context.Context, aggregate *order.Order) error {
			return aggregate.AssignDriver(command.DriverID())
		},
	)
}
