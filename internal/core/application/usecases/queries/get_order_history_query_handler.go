package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// GetOrderHistoryQueryHandler reads one order's audit trail from the database.
// The join against orders enforces tenant scoping: another tenant's order
// reads as not found, never as an empty history.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the audit trail, oldest entry first.
// Returns an object-not-found error when the order does not exist for the tenant.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM orders WHERE id = ? AND tenant_id = ?`,
			query.OrderID().String(), query.TenantID().String()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.from_status,
			h.to_status,
			h.changed_by,
			h.notes,
			h.created_at
		FROM order_status_history h
		WHERE h.order_id = ?
		ORDER BY h.created_at, h.id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderHistoryQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			fromStatus sql.NullString
			toStatus   string
			changedBy  uuid.NullUUID
			notes      string
			createdAt  time.Time
		)

		if err = rows.Scan(
			&id,
			&fromStatus,
			&toStatus,
			&changedBy,
			&notes,
			&createdAt,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry := GetOrderHistoryQueryResponse{
			ID:        entryID,
			ToStatus:  order.Status(toStatus),
			Notes:     notes,
			CreatedAt: createdAt,
		}

		if fromStatus.Valid {
			from := order.Status(fromStatus.String)
			entry.FromStatus = &from
		}
		if changedBy.Valid {
			actor, actorErr := kernel.UUIDFromBytes(changedBy.UUID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			entry.ChangedBy = &actor
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
