package commands

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrBatchChangeStatusCommandIsNotConstructed = errors.New(
	"BatchChangeStatusCommand must be created via NewBatchChangeStatusCommand constructor",
)

// BatchChangeStatusCommand requests the same status transition for many orders
// of one tenant. An optional driver travels with the command and is assigned to
// each order as part of its transition, so a dispatcher can assign a vehicle
// and mark a whole load as loaded in one call.
//
// Example:
//
//	cmd, err := NewBatchChangeStatusCommand(tenantID, orderIDs, order.StatusLoaded, &actorID, "truck 7", &driverID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type BatchChangeStatusCommand struct { //nolint:recvcheck //using for validation
	tenantID  kernel.UUID
	orderIDs  []kernel.UUID
	newStatus order.Status
	changedBy *kernel.UUID
	notes     string
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewBatchChangeStatusCommand creates a command to transition many orders at once.
// Requires at least one order ID; validates every identifier and the target status.
func NewBatchChangeStatusCommand(
	tenantID kernel.UUID,
	orderIDs []kernel.UUID,
	newStatus order.Status,
	changedBy *kernel.UUID,
	notes string,
	driverID *kernel.UUID,
) (BatchChangeStatusCommand, error) {
	command := BatchChangeStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setOrderIDs(orderIDs),
		command.setNewStatus(newStatus),
		command.setChangedBy(changedBy),
		command.setDriverID(driverID),
	); err != nil {
		return BatchChangeStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBatchChangeStatusCommandIsNotConstructed if validation fails.
func (c BatchChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrBatchChangeStatusCommandIsNotConstructed)
}

// TenantID returns the tenant that owns the orders.
func (c BatchChangeStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderIDs returns the orders to transition, in the caller's supplied order.
func (c BatchChangeStatusCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// NewStatus returns the requested target status.
func (c BatchChangeStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ChangedBy returns the actor recorded in the audit trail, nil for system actions.
func (c BatchChangeStatusCommand) ChangedBy() *kernel.UUID {
	return c.changedBy
}

// Notes returns the free-text context attached to each transition.
func (c BatchChangeStatusCommand) Notes() string {
	return c.notes
}

// DriverID returns the driver to assign alongside each transition, nil when absent.
func (c BatchChangeStatusCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *BatchChangeStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *BatchChangeStatusCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BatchChangeStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *BatchChangeStatusCommand) setChangedBy(changedBy *kernel.UUID) error {
	if changedBy == nil {
		return nil
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	c.changedBy = changedBy
	return nil
}

func (c *BatchChangeStatusCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
