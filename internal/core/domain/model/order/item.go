package order

import (
	"fmt"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// Item is a line item owned exclusively by its Order. Items are created with
// the order, and deleted or requantified only through the Order Editor while
// the order is editable.
//
// Invariant: lineTotal = unitPrice * qtyOrdered - discountAmount + taxAmount.
// Once fulfillment has begun, qtyPicked, qtyDelivered, and qtyReturned never
// exceed qtyOrdered.
type Item struct {
	id             kernel.UUID
	productID      kernel.UUID
	unitPrice      kernel.Money
	qtyOrdered     int
	qtyPicked      int
	qtyDelivered   int
	qtyReturned    int
	discountAmount kernel.Money
	taxAmount      kernel.Money
	lineTotal      kernel.Money
}

// NewItem creates a line item for a new order. Fulfillment quantities start at
// zero and the line total is computed from the price, quantity, discount, and tax.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	unitPrice kernel.Money,
	qtyOrdered int,
	discountAmount kernel.Money,
	taxAmount kernel.Money,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if qtyOrdered <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"qtyOrdered",
			fmt.Errorf("%d is not greater than 0", qtyOrdered),
		)
	}

	item := &Item{
		id:             id,
		productID:      productID,
		unitPrice:      unitPrice,
		qtyOrdered:     qtyOrdered,
		discountAmount: discountAmount,
		taxAmount:      taxAmount,
	}

	if err := item.recomputeLineTotal(); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItemParams carries the persisted state of a line item.
type RestoreItemParams struct {
	ID             kernel.UUID
	ProductID      kernel.UUID
	UnitPrice      kernel.Money
	QtyOrdered     int
	QtyPicked      int
	QtyDelivered   int
	QtyReturned    int
	DiscountAmount kernel.Money
	TaxAmount      kernel.Money
	LineTotal      kernel.Money
}

// RestoreItem reconstructs a persisted line item. Used by the persistence adapter only.
func RestoreItem(p RestoreItemParams) (*Item, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.ProductID.Validate(); err != nil {
		return nil, err
	}
	if p.QtyOrdered <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"qtyOrdered",
			fmt.Errorf("%d is not greater than 0", p.QtyOrdered),
		)
	}
	for name, qty := range map[string]int{
		"qtyPicked":    p.QtyPicked,
		"qtyDelivered": p.QtyDelivered,
		"qtyReturned":  p.QtyReturned,
	} {
		if qty < 0 || qty > p.QtyOrdered {
			return nil, errs.NewValueIsOutOfRangeError(name, qty, 0, p.QtyOrdered)
		}
	}

	return &Item{
		id:             p.ID,
		productID:      p.ProductID,
		unitPrice:      p.UnitPrice,
		qtyOrdered:     p.QtyOrdered,
		qtyPicked:      p.QtyPicked,
		qtyDelivered:   p.QtyDelivered,
		qtyReturned:    p.QtyReturned,
		discountAmount: p.DiscountAmount,
		taxAmount:      p.TaxAmount,
		lineTotal:      p.LineTotal,
	}, nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// UnitPrice returns the unit price fixed at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// QtyOrdered returns the ordered quantity.
func (i *Item) QtyOrdered() int {
	return i.qtyOrdered
}

// QtyPicked returns the picked quantity.
func (i *Item) QtyPicked() int {
	return i.qtyPicked
}

// QtyDelivered returns the delivered quantity.
func (i *Item) QtyDelivered() int {
	return i.qtyDelivered
}

// QtyReturned returns the returned quantity.
func (i *Item) QtyReturned() int {
	return i.qtyReturned
}

// DiscountAmount returns the per-line discount.
func (i *Item) DiscountAmount() kernel.Money {
	return i.discountAmount
}

// TaxAmount returns the per-line tax.
func (i *Item) TaxAmount() kernel.Money {
	return i.taxAmount
}

// LineTotal returns unitPrice * qtyOrdered - discountAmount + taxAmount.
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// previewLineTotal computes the line total for a prospective quantity without
// mutating the line. Fails when the line discount exceeds the gross amount.
func (i *Item) previewLineTotal(qty int) (kernel.Money, error) {
	gross := i.unitPrice.MulInt(qty)
	net, err := gross.Sub(i.discountAmount)
	if err != nil {
		return kernel.ZeroMoney(), err
	}
	return net.Add(i.taxAmount), nil
}

// applyQtyOrdered requantifies the line with a total already validated by
// previewLineTotal. Called by the Order Editor only; quantity must be positive
// (zero means removal, which the editor handles by dropping the item).
func (i *Item) applyQtyOrdered(qty int, lineTotal kernel.Money) {
	i.qtyOrdered = qty
	i.lineTotal = lineTotal
}

// recomputeLineTotal reapplies the line total invariant.
// Fails when the line discount exceeds the gross amount.
func (i *Item) recomputeLineTotal() error {
	gross := i.unitPrice.MulInt(i.qtyOrdered)
	net, err := gross.Sub(i.discountAmount)
	if err != nil {
		return err
	}
	i.lineTotal = net.Add(i.taxAmount)
	return nil
}
