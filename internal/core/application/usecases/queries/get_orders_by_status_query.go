// Package queries contains read-only operations over the order store.
// Query handlers bypass the aggregate and read with raw SQL for performance,
// returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves a tenant's orders, optionally filtered to
// one lifecycle status. Used by dashboards to drive batch operations.
//
// Example:
//
//	status := order.StatusPicking
//	query, err := NewGetOrdersByStatusQuery(tenantID, &status)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for a tenant's orders.
// A nil status returns every order of the tenant.
func NewGetOrdersByStatusQuery(tenantID kernel.UUID, status *order.Status) (GetOrdersByStatusQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersByStatusQuery{}, err
		}
	}

	return GetOrdersByStatusQuery{
		tenantID: tenantID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// TenantID returns the tenant whose orders are read.
func (q GetOrdersByStatusQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Status returns the status filter, nil for all statuses.
func (q GetOrdersByStatusQuery) Status() *order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse is the flat read model of one order row.
type GetOrdersByStatusQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	TotalAmount   kernel.Money
	DriverID      *kernel.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
