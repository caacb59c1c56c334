package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It owns its line items and
// its status history, and is the only place where status transitions, driver
// assignment, and pre-fulfillment edits are validated and applied.
//
// Order maintains these invariants:
//   - status changes only along the edges of the transition table
//   - every accepted transition appends exactly one history entry
//   - totalAmount == subtotalAmount - discountAmount + taxAmount
//   - paidAmount never exceeds totalAmount as a result of this aggregate's writes
//   - terminal orders (delivered, cancelled) are never mutated again
type Order struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	orderNumber string

	status        Status
	paymentStatus PaymentStatus

	subtotalAmount kernel.Money
	discountAmount kernel.Money
	taxAmount      kernel.Money
	totalAmount    kernel.Money
	paidAmount     kernel.Money

	driverID              *kernel.UUID
	salesRepID            *kernel.UUID
	requestedDeliveryDate *time.Time
	notes                 string

	cancelledAt  *time.Time
	cancelReason string
	deliveredAt  *time.Time

	createdAt time.Time
	updatedAt time.Time

	// version backs the optimistic concurrency check in the persistence layer.
	version int

	items   []*Item
	history []*StatusHistoryEntry

	// newHistory collects entries appended in this session; the repository
	// drains it when persisting.
	newHistory []*StatusHistoryEntry

	isConstructed bool
}

// NewOrder creates an order in pending status with its initial history entry.
// Order placement itself happens in a separate subsystem; this constructor is the
// single entry point it and the tests use to obtain a valid aggregate.
//
// Totals are computed from the items: subtotal is the sum of line totals, and
// total = subtotal - discountAmount + taxAmount.
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderNumber string,
	createdBy *kernel.UUID,
	discountAmount kernel.Money,
	taxAmount kernel.Money,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
	); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	now := time.Now().UTC()
	o := &Order{
		id:             id,
		tenantID:       tenantID,
		orderNumber:    orderNumber,
		status:         StatusPending,
		paymentStatus:  PaymentStatusUnpaid,
		discountAmount: discountAmount,
		taxAmount:      taxAmount,
		paidAmount:     kernel.ZeroMoney(),
		createdAt:      now,
		updatedAt:      now,
		version:        1,
		items:          items,
		isConstructed:  true,
	}

	if err := o.recomputeTotals(); err != nil {
		return nil, err
	}

	entry := newStatusHistoryEntry(nil, StatusPending, createdBy, "", now)
	o.history = append(o.history, entry)
	o.newHistory = append(o.newHistory, entry)

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order aggregate.
type RestoreOrderParams struct {
	ID                    kernel.UUID
	TenantID              kernel.UUID
	OrderNumber           string
	Status                Status
	PaymentStatus         PaymentStatus
	SubtotalAmount        kernel.Money
	DiscountAmount        kernel.Money
	TaxAmount             kernel.Money
	TotalAmount           kernel.Money
	PaidAmount            kernel.Money
	DriverID              *kernel.UUID
	SalesRepID            *kernel.UUID
	RequestedDeliveryDate *time.Time
	Notes                 string
	CancelledAt           *time.Time
	CancelReason          string
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int
	Items                 []*Item
	History               []*StatusHistoryEntry
}

// RestoreOrder reconstructs a persisted aggregate. Used by the persistence adapter only.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if p.OrderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if p.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a valid aggregate version", p.Version),
		)
	}

	return &Order{
		id:                    p.ID,
		tenantID:              p.TenantID,
		orderNumber:           p.OrderNumber,
		status:                p.Status,
		paymentStatus:         p.PaymentStatus,
		subtotalAmount:        p.SubtotalAmount,
		discountAmount:        p.DiscountAmount,
		taxAmount:             p.TaxAmount,
		totalAmount:           p.TotalAmount,
		paidAmount:            p.PaidAmount,
		driverID:              p.DriverID,
		salesRepID:            p.SalesRepID,
		requestedDeliveryDate: p.RequestedDeliveryDate,
		notes:                 p.Notes,
		cancelledAt:           p.CancelledAt,
		cancelReason:          p.CancelReason,
		deliveredAt:           p.DeliveredAt,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
		version:               p.Version,
		items:                 p.Items,
		history:               p.History,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant.
func (o *Order) TenantID() kernel.UUID { return o.tenantID }

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// SubtotalAmount returns the sum of line totals.
func (o *Order) SubtotalAmount() kernel.Money { return o.subtotalAmount }

// DiscountAmount returns the order-level discount.
func (o *Order) DiscountAmount() kernel.Money { return o.discountAmount }

// TaxAmount returns the order-level tax.
func (o *Order) TaxAmount() kernel.Money { return o.taxAmount }

// TotalAmount returns subtotalAmount - discountAmount + taxAmount.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// PaidAmount returns the amount paid so far.
func (o *Order) PaidAmount() kernel.Money { return o.paidAmount }

// Driver returns the assigned driver's ID, nil if unassigned.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// SalesRep returns the sales representative's ID, nil if none.
func (o *Order) SalesRep() *kernel.UUID { return o.salesRepID }

// RequestedDeliveryDate returns the requested delivery date, nil if none.
func (o *Order) RequestedDeliveryDate() *time.Time { return o.requestedDeliveryDate }

// Notes returns the order notes.
func (o *Order) Notes() string { return o.notes }

// CancelledAt returns when the order was cancelled, nil otherwise.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// CancelReason returns the reason recorded with the cancellation.
func (o *Order) CancelReason() string { return o.cancelReason }

// DeliveredAt returns when the order was delivered, nil otherwise.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the order was last written.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic concurrency version.
func (o *Order) Version() int { return o.version }

// Items returns the line items in insertion order.
func (o *Order) Items() []*Item { return o.items }

// History returns the loaded audit trail plus any entries added this session.
func (o *Order) History() []*StatusHistoryEntry { return o.history }

// TakeNewHistory drains and returns the history entries appended in this session.
// Called by the repository when persisting the aggregate.
func (o *Order) TakeNewHistory() []*StatusHistoryEntry {
	entries := o.newHistory
	o.newHistory = nil
	return entries
}

// BumpVersion advances the optimistic concurrency version after a successful
// conditional write. Called by the persistence adapter, never by application code.
func (o *Order) BumpVersion() {
	o.version++
}

// IsEditable reports whether line items and metadata may still be changed.
func (o *Order) IsEditable() bool {
	return o.status.IsEditable()
}

// Transition validates and applies a single status change.
//
// Preconditions, first failure wins:
//  1. terminal orders reject everything with ErrOrderTerminal
//  2. cancellation from a non-cancellable status fails with ErrNotCancellable
//  3. the edge must exist in the transition table, else ErrInvalidTransition
//  4. loaded requires a driver on the order after applying a driver supplied
//     with the same call, else ErrDriverRequired
//
// On success the status is updated, delivered/cancelled stamps are set, the
// cancel reason is stored from notes, and exactly one history entry is appended.
// On failure the order is unchanged.
func (o *Order) Transition(target Status, actor *kernel.UUID, notes string, driverID *kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrOrderTerminal, o.status)
	}
	if target == StatusCancelled && !o.status.IsCancellable() {
		return fmt.Errorf("%w: cancellation requested from %s", ErrNotCancellable, o.status)
	}
	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}

	// The driver side effect lands before the loaded precondition so a single
	// call can both assign a driver and move to loaded.
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
		o.driverID = driverID
	}
	if target == StatusLoaded && o.driverID == nil {
		return ErrDriverRequired
	}

	now := time.Now().UTC()
	previous := o.status
	o.status = target

	switch target {
	case StatusDelivered:
		o.deliveredAt = &now
	case StatusCancelled:
		o.cancelledAt = &now
		o.cancelReason = notes
	}

	entry := newStatusHistoryEntry(&previous, target, actor, notes, now)
	o.history = append(o.history, entry)
	o.newHistory = append(o.newHistory, entry)
	o.updatedAt = now

	return nil
}

// AssignDriver sets the order's driver without changing the status.
// The caller is responsible for validating that the driver belongs to the
// tenant and holds the driver role. Terminal orders reject assignment.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrOrderTerminal, o.status)
	}

	o.driverID = &driverID
	o.updatedAt = time.Now().UTC()
	return nil
}

// ItemChange requests a quantity change for one line item.
// A NewQty of zero removes the item.
type ItemChange struct {
	ItemID kernel.UUID
	NewQty int
}

// ApplyEdit mutates line items and metadata of an order that has not begun
// fulfillment, then recomputes the monetary totals.
//
// The edit is all-or-nothing: every referenced item is resolved before anything
// is applied, and an unknown item fails the whole edit with ErrItemNotFound.
// The order's status never changes. The order-level discount and tax are kept
// as-is; total = subtotal - discountAmount + taxAmount is reestablished after
// the item changes.
func (o *Order) ApplyEdit(notes *string, requestedDeliveryDate *time.Time, changes []ItemChange) error {
	if !o.IsEditable() {
		return fmt.Errorf("%w: %s", ErrOrderNotEditable, o.status)
	}

	// Stage everything before mutating anything: resolve the items, compute
	// every prospective line total, and check the order-level invariants.
	// A failure at any point leaves the aggregate untouched.
	finalQty := make(map[kernel.UUID]int, len(changes))
	for _, change := range changes {
		if change.NewQty < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"qtyOrdered",
				fmt.Errorf("%d is negative", change.NewQty),
			)
		}
		if o.findItem(change.ItemID) == nil {
			return fmt.Errorf("%w: %s", ErrItemNotFound, change.ItemID)
		}
		// On a repeated item ID the last change wins, as with sequential edits.
		finalQty[change.ItemID] = change.NewQty
	}

	staged := make(map[kernel.UUID]kernel.Money, len(finalQty))
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		qty, changed := finalQty[item.id]
		if changed && qty == 0 {
			continue
		}
		lineTotal := item.lineTotal
		if changed {
			var err error
			lineTotal, err = item.previewLineTotal(qty)
			if err != nil {
				return err
			}
			staged[item.id] = lineTotal
		}
		subtotal = subtotal.Add(lineTotal)
	}

	net, err := subtotal.Sub(o.discountAmount)
	if err != nil {
		return err
	}
	total := net.Add(o.taxAmount)
	if o.paidAmount.GreaterThan(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("total %s below paid amount %s", total, o.paidAmount),
		)
	}

	kept := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		qty, changed := finalQty[item.id]
		if changed && qty == 0 {
			continue
		}
		if changed {
			item.applyQtyOrdered(qty, staged[item.id])
		}
		kept = append(kept, item)
	}
	o.items = kept
	o.subtotalAmount = subtotal
	o.totalAmount = total

	if notes != nil {
		o.notes = *notes
	}
	if requestedDeliveryDate != nil {
		o.requestedDeliveryDate = requestedDeliveryDate
	}
	o.updatedAt = time.Now().UTC()

	return nil
}

// findItem returns the item with the given ID or nil.
func (o *Order) findItem(id kernel.UUID) *Item {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item
		}
	}
	return nil
}

// recomputeTotals reestablishes the monetary invariant:
// subtotal = sum of line totals, total = subtotal - discount + tax.
// Fails when the discount exceeds the subtotal plus tax, or when the new total
// would fall below the amount already paid.
func (o *Order) recomputeTotals() error {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	net, err := subtotal.Sub(o.discountAmount)
	if err != nil {
		return err
	}
	total := net.Add(o.taxAmount)

	if o.paidAmount.GreaterThan(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("total %s below paid amount %s", total, o.paidAmount),
		)
	}

	o.subtotalAmount = subtotal
	o.totalAmount = total
	return nil
}
