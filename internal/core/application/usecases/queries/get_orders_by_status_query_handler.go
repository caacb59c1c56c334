package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// GetOrdersByStatusQueryHandler reads order rows straight from the database.
// Items and history are not loaded; callers needing the full aggregate go
// through the repository instead.
//
// Example:
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders\n", len(orders))
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns the tenant's orders, newest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			status,
			payment_status,
			total_amount,
			driver_id,
			created_at,
			updated_at
		FROM orders
		WHERE tenant_id = ?
	`
	args := []any{query.TenantID().String()}
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			orderNumber string
			status      string
			payStatus   string
			total       decimal.Decimal
			driverID    uuid.NullUUID
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err = rows.Scan(
			&id,
			&orderNumber,
			&status,
			&payStatus,
			&total,
			&driverID,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		totalAmount, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}

		resp := GetOrdersByStatusQueryResponse{
			ID:            orderID,
			OrderNumber:   orderNumber,
			Status:        order.Status(status),
			PaymentStatus: order.PaymentStatus(payStatus),
			TotalAmount:   totalAmount,
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		}

		if driverID.Valid {
			driver, drvErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if drvErr != nil {
				return nil, drvErr
			}
			resp.DriverID = &driver
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
