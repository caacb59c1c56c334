package commands

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrBatchCancelOrdersCommandIsNotConstructed = errors.New(
	"BatchCancelOrdersCommand must be created via NewBatchCancelOrdersCommand constructor",
)

// BatchCancelOrdersCommand requests cancellation of many orders of one tenant.
// The reason is stored on each cancelled order and in its audit trail.
//
// Example:
//
//	cmd, err := NewBatchCancelOrdersCommand(tenantID, orderIDs, "customer closed for holidays", &actorID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type BatchCancelOrdersCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.UUID
	orderIDs    []kernel.UUID
	reason      string
	cancelledBy *kernel.UUID

	guard guard.ConstructorGuard
}

// NewBatchCancelOrdersCommand creates a command to cancel many orders at once.
// Requires at least one order ID and a non-empty reason.
func NewBatchCancelOrdersCommand(
	tenantID kernel.UUID,
	orderIDs []kernel.UUID,
	reason string,
	cancelledBy *kernel.UUID,
) (BatchCancelOrdersCommand, error) {
	command := BatchCancelOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setOrderIDs(orderIDs),
		command.setReason(reason),
		command.setCancelledBy(cancelledBy),
	); err != nil {
		return BatchCancelOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBatchCancelOrdersCommandIsNotConstructed if validation fails.
func (c BatchCancelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBatchCancelOrdersCommandIsNotConstructed)
}

// TenantID returns the tenant that owns the orders.
func (c BatchCancelOrdersCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderIDs returns the orders to cancel, in the caller's supplied order.
func (c BatchCancelOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Reason returns the cancellation reason stored on each order.
func (c BatchCancelOrdersCommand) Reason() string {
	return c.reason
}

// CancelledBy returns the actor recorded in the audit trail, nil for system actions.
func (c BatchCancelOrdersCommand) CancelledBy() *kernel.UUID {
	return c.cancelledBy
}

func (c *BatchCancelOrdersCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *BatchCancelOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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

func (c *BatchCancelOrdersCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *BatchCancelOrdersCommand) setCancelledBy(cancelledBy *kernel.UUID) error {
	if cancelledBy == nil {
		return nil
	}
	if err := cancelledBy.Validate(); err != nil {
		return err
	}

	c.cancelledBy = cancelledBy
	return nil
}
