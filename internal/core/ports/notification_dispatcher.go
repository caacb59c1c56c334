package ports

import (
	"context"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// StatusChangedEvent describes one accepted transition for downstream
// notification channels (Telegram, email, dashboards).
type StatusChangedEvent struct {
	TenantID    kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	FromStatus  *order.Status
	ToStatus    order.Status
	ChangedBy   *kernel.UUID
	OccurredAt  time.Time
}

// DeliveryOverdueEvent flags an order still delivering past its requested
// delivery date, for follow-up by the tenant's dispatchers.
type DeliveryOverdueEvent struct {
	TenantID              kernel.UUID
	OrderID               kernel.UUID
	OrderNumber           string
	DriverID              *kernel.UUID
	RequestedDeliveryDate time.Time
	DetectedAt            time.Time
}

// NotificationDispatcher delivers order events to interested subscribers.
// Dispatch is fire-and-forget: delivery failure must never fail the operation
// that produced the event, so callers log returned errors and move on.
type NotificationDispatcher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
	PublishDeliveryOverdue(ctx context.Context, event DeliveryOverdueEvent) error
}
