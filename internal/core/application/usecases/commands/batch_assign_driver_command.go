package commands

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrBatchAssignDriverCommandIsNotConstructed = errors.New(
	"BatchAssignDriverCommand must be created via NewBatchAssignDriverCommand constructor",
)

// BatchAssignDriverCommand requests that one driver be set on many orders.
// Assignment changes no status and writes no audit entries; it only stamps the
// driver so later transitions to loaded can succeed.
//
// Example:
//
//	cmd, err := NewBatchAssignDriverCommand(tenantID, orderIDs, driverID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type BatchAssignDriverCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderIDs []kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBatchAssignDriverCommand creates a command to assign a driver to many orders.
// Requires at least one order ID and a constructed driver ID.
func NewBatchAssignDriverCommand(
	tenantID kernel.UUID,
	orderIDs []kernel.UUID,
	driverID kernel.UUID,
) (BatchAssignDriverCommand, error) {
	command := BatchAssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setOrderIDs(orderIDs),
		command.setDriverID(driverID),
	); err != nil {
		return BatchAssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBatchAssignDriverCommandIsNotConstructed if validation fails.
func (c BatchAssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrBatchAssignDriverCommandIsNotConstructed)
}

// TenantID returns the tenant that owns the orders.
func (c BatchAssignDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderIDs returns the orders to stamp, in the caller's supplied order.
func (c BatchAssignDriverCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// DriverID returns the driver to assign.
func (c BatchAssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *BatchAssignDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *BatchAssignDriverCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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

func (c *BatchAssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
