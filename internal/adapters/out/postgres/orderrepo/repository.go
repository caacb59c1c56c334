package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and buffered history entries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.History = historyFromDomain(aggregate.ID(), aggregate.TakeNewHistory())

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order conditionally on its loaded version.
// The order row is written with WHERE id AND version and the version bumped;
// zero rows affected on an existing order means another writer got there
// first and surfaces as a version conflict. Items are replaced wholesale and
// history entries buffered on the aggregate are appended.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"status":                  dto.Status,
			"payment_status":          dto.PaymentStatus,
			"subtotal_amount":         dto.SubtotalAmount,
			"discount_amount":         dto.DiscountAmount,
			"tax_amount":              dto.TaxAmount,
			"total_amount":            dto.TotalAmount,
			"paid_amount":             dto.PaidAmount,
			"driver_id":               dto.DriverID,
			"sales_rep_id":            dto.SalesRepID,
			"requested_delivery_date": dto.RequestedDeliveryDate,
			"notes":                   dto.Notes,
			"cancelled_at":            dto.CancelledAt,
			"cancel_reason":           dto.CancelReason,
			"delivered_at":            dto.DeliveredAt,
			"updated_at":              dto.UpdatedAt,
			"version":                 aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order", nil)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	newHistory := historyFromDomain(aggregate.ID(), aggregate.TakeNewHistory())
	if len(newHistory) > 0 {
		if err := r.db.WithContext(ctx).Create(&newHistory).Error; err != nil {
			return err
		}
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tenant's order with its items and full history.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_history.created_at")
		}).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves a tenant's orders for the given ids in one fetch.
// IDs that are missing or belong to another tenant are simply absent.
func (r *GormOrderRepository) GetByIDs(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) ([]*order.Order, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_history.created_at")
		}).
		Find(&dtos, "tenant_id = ? AND id IN ?", tenantID.Bytes(), raw).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// GetOverdueDelivering retrieves orders across all tenants in delivering
// status whose requested delivery date lies before asOf.
func (r *GormOrderRepository) GetOverdueDelivering(
	ctx context.Context,
	asOf time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos,
			"status = ? AND requested_delivery_date IS NOT NULL AND requested_delivery_date < ?",
			order.StatusDelivering.String(), asOf,
		).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
