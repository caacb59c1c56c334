package queries

import (
	"errors"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the status audit trail of one order,
// oldest entry first.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(tenantID, orderID)
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for one order's audit trail.
func NewGetOrderHistoryQuery(tenantID, orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		tenantID: tenantID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// TenantID returns the tenant that owns the order.
func (q GetOrderHistoryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// OrderID returns the order whose history is read.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderHistoryQueryResponse is one entry of the audit trail.
// FromStatus is nil on the entry recorded at order creation.
type GetOrderHistoryQueryResponse struct {
	ID         kernel.UUID
	FromStatus *order.Status
	ToStatus   order.Status
	ChangedBy  *kernel.UUID
	Notes      string
	CreatedAt  time.Time
}
