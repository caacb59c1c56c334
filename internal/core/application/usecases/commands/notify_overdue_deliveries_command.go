package commands

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrNotifyOverdueDeliveriesCommandIsNotConstructed = errors.New(
	"NotifyOverdueDeliveriesCommand must be created via NewNotifyOverdueDeliveriesCommand constructor",
)

// NotifyOverdueDeliveriesCommand triggers a sweep for orders still delivering
// past their requested delivery date. Run on a schedule by the job manager.
//
// Example:
//
//	cmd := NewNotifyOverdueDeliveriesCommand()
//	err := handler.Handle(ctx, cmd)
type NotifyOverdueDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyOverdueDeliveriesCommand creates a command to trigger the overdue sweep.
func NewNotifyOverdueDeliveriesCommand() NotifyOverdueDeliveriesCommand {
	return NotifyOverdueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyOverdueDeliveriesCommandIsNotConstructed if validation fails.
func (c *NotifyOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueDeliveriesCommandIsNotConstructed)
}
