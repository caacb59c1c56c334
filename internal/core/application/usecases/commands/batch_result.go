package commands

import (
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// OrderOperationResult reports the outcome for one order of a batch operation.
// Error carries a stable machine code (order.Code* values) when Success is false.
type OrderOperationResult struct {
	OrderID        kernel.UUID
	OrderNumber    string
	Success        bool
	Error          string
	PreviousStatus *order.Status
}

// BatchOperationResult aggregates the per-order outcomes of a batch operation.
// Results preserve the order in which the order IDs were supplied.
type BatchOperationResult struct {
	Processed int
	Succeeded int
	Failed    int
	Results   []OrderOperationResult
}

func newSucceededResult(aggregate *order.Order, previous order.Status) OrderOperationResult {
	return OrderOperationResult{
		OrderID:        aggregate.ID(),
		OrderNumber:    aggregate.OrderNumber(),
		Success:        true,
		PreviousStatus: &previous,
	}
}

func newFailedResult(aggregate *order.Order, previous order.Status, err error) OrderOperationResult {
	return OrderOperationResult{
		OrderID:        aggregate.ID(),
		OrderNumber:    aggregate.OrderNumber(),
		Error:          order.ErrorCode(err),
		PreviousStatus: &previous,
	}
}

func newMissingResult(orderID kernel.UUID) OrderOperationResult {
	return OrderOperationResult{
		OrderID: orderID,
		Error:   order.CodeNotFound,
	}
}
