package http

import (
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/queries"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error payload. Code carries the stable machine
// code clients branch on; Message is for humans.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionOrderRequest struct {
	NewStatus string  `json:"newStatus"`
	ChangedBy *string `json:"changedBy,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	DriverID  *string `json:"driverId,omitempty"`
}

// ItemChangeRequest is one quantity change of an order edit.
// A zero quantity removes the item.
type ItemChangeRequest struct {
	ItemID string `json:"itemId"`
	NewQty int    `json:"newQty"`
}

// EditOrderRequest is the body of PATCH /api/v1/orders/:id.
// Nil fields leave the corresponding order field untouched.
type EditOrderRequest struct {
	Notes                 *string             `json:"notes,omitempty"`
	RequestedDeliveryDate *time.Time          `json:"requestedDeliveryDate,omitempty"`
	ItemChanges           []ItemChangeRequest `json:"itemChanges,omitempty"`
}

// BatchChangeStatusRequest is the body of POST /api/v1/orders/batch/status.
type BatchChangeStatusRequest struct {
	OrderIDs  []string `json:"orderIds"`
	NewStatus string   `json:"newStatus"`
	ChangedBy *string  `json:"changedBy,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	DriverID  *string  `json:"driverId,omitempty"`
}

// BatchCancelRequest is the body of POST /api/v1/orders/batch/cancel.
type BatchCancelRequest struct {
	OrderIDs    []string `json:"orderIds"`
	Reason      string   `json:"reason"`
	CancelledBy *string  `json:"cancelledBy,omitempty"`
}

// BatchAssignDriverRequest is the body of POST /api/v1/orders/batch/assign-driver.
type BatchAssignDriverRequest struct {
	OrderIDs []string `json:"orderIds"`
	DriverID string   `json:"driverId"`
}

// OrderItemResponse is one line item of a full order payload.
type OrderItemResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	UnitPrice      string `json:"unitPrice"`
	QtyOrdered     int    `json:"qtyOrdered"`
	QtyPicked      int    `json:"qtyPicked"`
	QtyDelivered   int    `json:"qtyDelivered"`
	QtyReturned    int    `json:"qtyReturned"`
	DiscountAmount string `json:"discountAmount"`
	TaxAmount      string `json:"taxAmount"`
	LineTotal      string `json:"lineTotal"`
}

// OrderResponse is the full order payload returned by write operations.
// Monetary amounts are decimal strings.
type OrderResponse struct {
	ID                    string              `json:"id"`
	OrderNumber           string              `json:"orderNumber"`
	Status                string              `json:"status"`
	PaymentStatus         string              `json:"paymentStatus"`
	SubtotalAmount        string              `json:"subtotalAmount"`
	DiscountAmount        string              `json:"discountAmount"`
	TaxAmount             string              `json:"taxAmount"`
	TotalAmount           string              `json:"totalAmount"`
	PaidAmount            string              `json:"paidAmount"`
	DriverID              *string             `json:"driverId,omitempty"`
	SalesRepID            *string             `json:"salesRepId,omitempty"`
	RequestedDeliveryDate *time.Time          `json:"requestedDeliveryDate,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	CancelledAt           *time.Time          `json:"cancelledAt,omitempty"`
	CancelReason          string              `json:"cancelReason,omitempty"`
	DeliveredAt           *time.Time          `json:"deliveredAt,omitempty"`
	Version               int                 `json:"version"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
	Items                 []OrderItemResponse `json:"items"`
}

// OrderOperationResultResponse is the outcome for one order of a batch call.
type OrderOperationResultResponse struct {
	OrderID        string  `json:"orderId"`
	OrderNumber    string  `json:"orderNumber,omitempty"`
	Success        bool    `json:"success"`
	Error          string  `json:"error,omitempty"`
	PreviousStatus *string `json:"previousStatus,omitempty"`
}

// BatchOperationResultResponse aggregates per-order outcomes of a batch call.
type BatchOperationResultResponse struct {
	Processed int                            `json:"processed"`
	Succeeded int                            `json:"succeeded"`
	Failed    int                            `json:"failed"`
	Results   []OrderOperationResultResponse `json:"results"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   string    `json:"totalAmount"`
	DriverID      *string   `json:"driverId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HistoryEntryResponse is one entry of the status audit trail.
type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	ChangedBy  *string   `json:"changedBy,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItemResponse{
			ID:             item.ID().String(),
			ProductID:      item.ProductID().String(),
			UnitPrice:      item.UnitPrice().String(),
			QtyOrdered:     item.QtyOrdered(),
			QtyPicked:      item.QtyPicked(),
			QtyDelivered:   item.QtyDelivered(),
			QtyReturned:    item.QtyReturned(),
			DiscountAmount: item.DiscountAmount().String(),
			TaxAmount:      item.TaxAmount().String(),
			LineTotal:      item.LineTotal().String(),
		}
	}

	return OrderResponse{
		ID:                    aggregate.ID().String(),
		OrderNumber:           aggregate.OrderNumber(),
		Status:                aggregate.Status().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		SubtotalAmount:        aggregate.SubtotalAmount().String(),
		DiscountAmount:        aggregate.DiscountAmount().String(),
		TaxAmount:             aggregate.TaxAmount().String(),
		TotalAmount:           aggregate.TotalAmount().String(),
		PaidAmount:            aggregate.PaidAmount().String(),
		DriverID:              uuidToString(aggregate.Driver()),
		SalesRepID:            uuidToString(aggregate.SalesRep()),
		RequestedDeliveryDate: aggregate.RequestedDeliveryDate(),
		Notes:                 aggregate.Notes(),
		CancelledAt:           aggregate.CancelledAt(),
		CancelReason:          aggregate.CancelReason(),
		DeliveredAt:           aggregate.DeliveredAt(),
		Version:               aggregate.Version(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
	}
}

func batchResultToResponse(result commands.BatchOperationResult) BatchOperationResultResponse {
	results := make([]OrderOperationResultResponse, len(result.Results))
	for i, entry := range result.Results {
		results[i] = OrderOperationResultResponse{
			OrderID:        entry.OrderID.String(),
			OrderNumber:    entry.OrderNumber,
			Success:        entry.Success,
			Error:          entry.Error,
			PreviousStatus: statusToString(entry.PreviousStatus),
		}
	}

	return BatchOperationResultResponse{
		Processed: result.Processed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Results:   results,
	}
}

func summariesToResponse(rows []queries.GetOrdersByStatusQueryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			Status:        row.Status.String(),
			PaymentStatus: row.PaymentStatus.String(),
			TotalAmount:   row.TotalAmount.String(),
			DriverID:      uuidToString(row.DriverID),
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
	}
	return response
}

func historyToResponse(entries []queries.GetOrderHistoryQueryResponse) []HistoryEntryResponse {
	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			ID:         entry.ID.String(),
			FromStatus: statusToString(entry.FromStatus),
			ToStatus:   entry.ToStatus.String(),
			ChangedBy:  uuidToString(entry.ChangedBy),
			Notes:      entry.Notes,
			CreatedAt:  entry.CreatedAt,
		}
	}
	return response
}

func uuidToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func statusToString(status *order.Status) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}
