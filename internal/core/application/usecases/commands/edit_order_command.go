package commands

import (
	"errors"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand requests changes to an order that has not begun fulfillment:
// line item quantities, notes, and the requested delivery date. Nil fields leave
// the corresponding order field untouched; a zero quantity removes the item.
//
// Example:
//
//	changes := []order.ItemChange{{ItemID: itemID, NewQty: 5}}
//	cmd, err := NewEditOrderCommand(tenantID, orderID, nil, &newDate, changes)
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID              kernel.UUID
	orderID               kernel.UUID
	notes                 *string
	requestedDeliveryDate *time.Time
	itemChanges           []order.ItemChange

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit one order's items and metadata.
// Validates identifiers and rejects negative quantities and zero item IDs up
// front; existence of the items is checked against the aggregate by the handler.
func NewEditOrderCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	notes *string,
	requestedDeliveryDate *time.Time,
	itemChanges []order.ItemChange,
) (EditOrderCommand, error) {
	command := EditOrderCommand{
		notes:                 notes,
		requestedDeliveryDate: requestedDeliveryDate,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setOrderID(orderID),
		command.setItemChanges(itemChanges),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// TenantID returns the tenant that owns the order.
func (c EditOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the replacement notes, nil to keep the current value.
func (c EditOrderCommand) Notes() *string {
	return c.notes
}

// RequestedDeliveryDate returns the replacement delivery date, nil to keep the current value.
func (c EditOrderCommand) RequestedDeliveryDate() *time.Time {
	return c.requestedDeliveryDate
}

// ItemChanges returns the requested quantity changes.
func (c EditOrderCommand) ItemChanges() []order.ItemChange {
	return c.itemChanges
}

func (c *EditOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setItemChanges(itemChanges []order.ItemChange) error {
	for _, change := range itemChanges {
		if err := change.ItemID.Validate(); err != nil {
			return err
		}
		if change.NewQty < 0 {
			return errs.NewValueIsOutOfRangeError("qty", change.NewQty, 0, nil)
		}
	}

	c.itemChanges = itemChanges
	return nil
}
