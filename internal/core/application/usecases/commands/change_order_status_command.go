package commands

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a single status transition for one order.
// An optional driver may travel with the command; it is assigned as part of the
// same transition so a dispatcher can assign and move to loaded in one call.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(tenantID, orderID, order.StatusConfirmed, &actorID, "confirmed by phone", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	tenantID  kernel.UUID
	orderID   kernel.UUID
	newStatus order.Status
	changedBy *kernel.UUID
	notes     string
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move one order to a new status.
// Validates tenant and order identifiers, the target status, and the optional
// actor and driver identifiers.
func NewChangeOrderStatusCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	newStatus order.Status,
	changedBy *kernel.UUID,
	notes string,
	driverID *kernel.UUID,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
		command.setChangedBy(changedBy),
		command.setDriverID(driverID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// TenantID returns the tenant that owns the order.
func (c ChangeOrderStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ChangedBy returns the actor recorded in the audit trail, nil for system actions.
func (c ChangeOrderStatusCommand) ChangedBy() *kernel.UUID {
	return c.changedBy
}

// Notes returns the free-text context attached to the transition.
func (c ChangeOrderStatusCommand) Notes() string {
	return c.notes
}

// DriverID returns the driver to assign alongside the transition, nil when absent.
func (c ChangeOrderStatusCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *ChangeOrderStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setChangedBy(changedBy *kernel.UUID) error {
	if changedBy == nil {
		return nil
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	c.changedBy = changedBy
	return nil
}

func (c *ChangeOrderStatusCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
