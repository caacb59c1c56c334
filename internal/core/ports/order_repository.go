// Package ports defines the contracts between the core and its collaborators:
// persistence, driver validation, and notification dispatch. These interfaces
// establish the boundary of the order lifecycle core and enable dependency
// inversion and testability.
package ports

import (
	"context"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read and write is scoped to a tenant; an order belonging to another
// tenant is indistinguishable from a missing one.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and initial history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing aggregate: the order row, its items,
	// and any history entries appended this session. The write is conditional on
	// the aggregate's version; a stale version yields a version conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a tenant's order with its items and full history.
	// Returns an object-not-found error when the id is missing or owned
	// by a different tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves a tenant's orders for the given ids in one fetch.
	// Missing or foreign ids are simply absent from the result; the caller
	// decides how to report them.
	GetByIDs(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) ([]*order.Order, error)

	// GetOverdueDelivering retrieves orders across all tenants that are in
	// delivering status with a requested delivery date before asOf.
	GetOverdueDelivering(ctx context.Context, asOf time.Time) ([]*order.Order, error)
}
