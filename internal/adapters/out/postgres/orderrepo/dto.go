// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Every query on this table is scoped by tenant_id; the version column backs
// optimistic concurrency on updates.
type OrderDTO struct {
	ID                    uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TenantID              uuid.UUID          `gorm:"type:uuid;index;not null"`
	OrderNumber           string             `gorm:"not null"`
	Status                string             `gorm:"index;not null"`
	PaymentStatus         string             `gorm:"not null"`
	SubtotalAmount        decimal.Decimal    `gorm:"type:numeric(14,2)"`
	DiscountAmount        decimal.Decimal    `gorm:"type:numeric(14,2)"`
	TaxAmount             decimal.Decimal    `gorm:"type:numeric(14,2)"`
	TotalAmount           decimal.Decimal    `gorm:"type:numeric(14,2)"`
	PaidAmount            decimal.Decimal    `gorm:"type:numeric(14,2)"`
	DriverID              *uuid.UUID         `gorm:"type:uuid;index"`
	SalesRepID            *uuid.UUID         `gorm:"type:uuid"`
	RequestedDeliveryDate *time.Time
	Notes                 string
	CancelledAt           *time.Time
	CancelReason          string
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int                `gorm:"not null;default:1"`
	Items                 []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History               []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
type OrderItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(14,2)"`
	QtyOrdered     int
	QtyPicked      int
	QtyDelivered   int
	QtyReturned    int
	DiscountAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	LineTotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents the database structure for the append-only
// status audit trail. Rows are only ever inserted, never updated or deleted
// while their order exists.
type StatusHistoryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	FromStatus *string
	ToStatus   string     `gorm:"not null"`
	ChangedBy  *uuid.UUID `gorm:"type:uuid"`
	Notes      string
	CreatedAt  time.Time
}

// TableName specifies the database table name for history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// History entries are intentionally not mapped here; they are append-only and
// handled separately from the new-entry buffer of the aggregate.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		TenantID:              aggregate.TenantID().Bytes(),
		OrderNumber:           aggregate.OrderNumber(),
		Status:                aggregate.Status().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		SubtotalAmount:        aggregate.SubtotalAmount().Decimal(),
		DiscountAmount:        aggregate.DiscountAmount().Decimal(),
		TaxAmount:             aggregate.TaxAmount().Decimal(),
		TotalAmount:           aggregate.TotalAmount().Decimal(),
		PaidAmount:            aggregate.PaidAmount().Decimal(),
		DriverID:              optionalUUID(aggregate.Driver()),
		SalesRepID:            optionalUUID(aggregate.SalesRep()),
		RequestedDeliveryDate: aggregate.RequestedDeliveryDate(),
		Notes:                 aggregate.Notes(),
		CancelledAt:           aggregate.CancelledAt(),
		CancelReason:          aggregate.CancelReason(),
		DeliveredAt:           aggregate.DeliveredAt(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Version:               aggregate.Version(),
		Items:                 items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		ProductID:      item.ProductID().Bytes(),
		UnitPrice:      item.UnitPrice().Decimal(),
		QtyOrdered:     item.QtyOrdered(),
		QtyPicked:      item.QtyPicked(),
		QtyDelivered:   item.QtyDelivered(),
		QtyReturned:    item.QtyReturned(),
		DiscountAmount: item.DiscountAmount().Decimal(),
		TaxAmount:      item.TaxAmount().Decimal(),
		LineTotal:      item.LineTotal().Decimal(),
	}
}

func historyFromDomain(orderID kernel.UUID, entries []*order.StatusHistoryEntry) []StatusHistoryDTO {
	dtos := make([]StatusHistoryDTO, 0, len(entries))
	for _, entry := range entries {
		var fromStatus *string
		if entry.FromStatus() != nil {
			s := entry.FromStatus().String()
			fromStatus = &s
		}

		dtos = append(dtos, StatusHistoryDTO{
			ID:         entry.ID().Bytes(),
			OrderID:    orderID.Bytes(),
			FromStatus: fromStatus,
			ToStatus:   entry.ToStatus().String(),
			ChangedBy:  optionalUUID(entry.ChangedBy()),
			Notes:      entry.Notes(),
			CreatedAt:  entry.CreatedAt(),
		})
	}
	return dtos
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]*order.StatusHistoryEntry, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		entry, historyErr := historyToDomain(historyDTO)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalAmount)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	paid, err := kernel.NewMoney(dto.PaidAmount)
	if err != nil {
		return nil, err
	}

	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	salesRepID, err := optionalKernelUUID(dto.SalesRepID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                    id,
		TenantID:              tenantID,
		OrderNumber:           dto.OrderNumber,
		Status:                order.Status(dto.Status),
		PaymentStatus:         order.PaymentStatus(dto.PaymentStatus),
		SubtotalAmount:        subtotal,
		DiscountAmount:        discount,
		TaxAmount:             tax,
		TotalAmount:           total,
		PaidAmount:            paid,
		DriverID:              driverID,
		SalesRepID:            salesRepID,
		RequestedDeliveryDate: dto.RequestedDeliveryDate,
		Notes:                 dto.Notes,
		CancelledAt:           dto.CancelledAt,
		CancelReason:          dto.CancelReason,
		DeliveredAt:           dto.DeliveredAt,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
		Version:               dto.Version,
		Items:                 items,
		History:               history,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.RestoreItemParams{
		ID:             id,
		ProductID:      productID,
		UnitPrice:      unitPrice,
		QtyOrdered:     dto.QtyOrdered,
		QtyPicked:      dto.QtyPicked,
		QtyDelivered:   dto.QtyDelivered,
		QtyReturned:    dto.QtyReturned,
		DiscountAmount: discount,
		TaxAmount:      tax,
		LineTotal:      lineTotal,
	})
}

func historyToDomain(dto StatusHistoryDTO) (*order.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var fromStatus *order.Status
	if dto.FromStatus != nil {
		s := order.Status(*dto.FromStatus)
		fromStatus = &s
	}

	changedBy, err := optionalKernelUUID(dto.ChangedBy)
	if err != nil {
		return nil, err
	}

	return order.RestoreStatusHistoryEntry(
		id,
		fromStatus,
		order.Status(dto.ToStatus),
		changedBy,
		dto.Notes,
		dto.CreatedAt,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
