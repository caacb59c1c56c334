// Package redispub delivers order events to subscribers over Redis pub/sub.
// Downstream consumers (Telegram bots, dashboards, mailers) subscribe to the
// configured channels; a publish reaches whoever is listening right now, which
// is all the delivery guarantee fire-and-forget notifications need.
package redispub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

// statusChangedMessage is the wire shape of a status-change notification.
type statusChangedMessage struct {
	TenantID    string    `json:"tenantId"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	FromStatus  *string   `json:"fromStatus,omitempty"`
	ToStatus    string    `json:"toStatus"`
	ChangedBy   *string   `json:"changedBy,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// deliveryOverdueMessage is the wire shape of an overdue-delivery notification.
type deliveryOverdueMessage struct {
	TenantID              string    `json:"tenantId"`
	OrderID               string    `json:"orderId"`
	OrderNumber           string    `json:"orderNumber"`
	DriverID              *string   `json:"driverId,omitempty"`
	RequestedDeliveryDate time.Time `json:"requestedDeliveryDate"`
	DetectedAt            time.Time `json:"detectedAt"`
}

// RedisNotificationDispatcher implements NotificationDispatcher over Redis
// pub/sub. Status changes and overdue alerts go to separate channels so
// consumers subscribe only to what they handle.
type RedisNotificationDispatcher struct {
	client         *redis.Client
	statusChannel  string
	overdueChannel string
}

// NewRedisNotificationDispatcher creates a dispatcher publishing to the given channels.
func NewRedisNotificationDispatcher(addr, statusChannel, overdueChannel string) *RedisNotificationDispatcher {
	return &RedisNotificationDispatcher{
		client:         redis.NewClient(&redis.Options{Addr: addr}),
		statusChannel:  statusChannel,
		overdueChannel: overdueChannel,
	}
}

// PublishStatusChanged publishes one accepted transition.
func (d *RedisNotificationDispatcher) PublishStatusChanged(
	ctx context.Context,
	event ports.StatusChangedEvent,
) error {
	message := statusChangedMessage{
		TenantID:    event.TenantID.String(),
		OrderID:     event.OrderID.String(),
		OrderNumber: event.OrderNumber,
		ToStatus:    event.ToStatus.String(),
		OccurredAt:  event.OccurredAt,
	}
	if event.FromStatus != nil {
		from := event.FromStatus.String()
		message.FromStatus = &from
	}
	if event.ChangedBy != nil {
		actor := event.ChangedBy.String()
		message.ChangedBy = &actor
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return d.client.Publish(ctx, d.statusChannel, payload).Err()
}

// PublishDeliveryOverdue publishes one overdue-delivery alert.
func (d *RedisNotificationDispatcher) PublishDeliveryOverdue(
	ctx context.Context,
	event ports.DeliveryOverdueEvent,
) error {
	message := deliveryOverdueMessage{
		TenantID:              event.TenantID.String(),
		OrderID:               event.OrderID.String(),
		OrderNumber:           event.OrderNumber,
		RequestedDeliveryDate: event.RequestedDeliveryDate,
		DetectedAt:            event.DetectedAt,
	}
	if event.DriverID != nil {
		driver := event.DriverID.String()
		message.DriverID = &driver
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return d.client.Publish(ctx, d.overdueChannel, payload).Err()
}

// Close releases the underlying Redis connection.
func (d *RedisNotificationDispatcher) Close() error {
	return d.client.Close()
}
