package commands

import (
	"context"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// EditOrderCommandHandler applies item and metadata edits to a single order.
// The aggregate enforces editability and recomputes the monetary totals; the
// handler only supplies the transaction boundary.
//
// Example:
//
//	handler := NewEditOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrItemNotFound) {
//	    // an unknown item fails the whole edit
//	}
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command and returns the updated aggregate.
// The edit is all-or-nothing: any rejected change leaves the order untouched
// and rolls back the transaction.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
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

	if err = aggregate.ApplyEdit(
		command.Notes(),
		command.RequestedDeliveryDate(),
		command.ItemChanges(),
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
