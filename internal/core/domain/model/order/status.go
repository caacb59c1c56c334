package order

import (
	"fmt"

	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> approved ──> picking ──> picked ──> loaded ──> delivering ──> delivered
//	   │            │                                                            │
//	   └────────────┴──> cancelled                                               └──> partial
//
// delivered and cancelled are terminal. partial and returned are valid current
// states (produced by the returns subsystem) but are never transition targets
// originated by this state machine from earlier states.
type Status string

const (
	// StatusPending is the initial status of every order.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the order has been confirmed by the tenant.
	StatusConfirmed Status = "confirmed"

	// StatusApproved indicates the order passed approval and may enter fulfillment.
	StatusApproved Status = "approved"

	// StatusPicking indicates warehouse picking is in progress.
	StatusPicking Status = "picking"

	// StatusPicked indicates all lines have been picked.
	StatusPicked Status = "picked"

	// StatusLoaded indicates the order is loaded on a vehicle. Requires a driver.
	StatusLoaded Status = "loaded"

	// StatusDelivering indicates the order is out for delivery.
	StatusDelivering Status = "delivering"

	// StatusDelivered is a terminal status: the order was fully delivered.
	StatusDelivered Status = "delivered"

	// StatusPartial indicates a partial delivery, recorded by the returns subsystem.
	StatusPartial Status = "partial"

	// StatusReturned indicates the order was returned, recorded by the returns subsystem.
	StatusReturned Status = "returned"

	// StatusCancelled is a terminal status: the order was cancelled.
	StatusCancelled Status = "cancelled"
)

// transitionTable holds the directed edges of the legal status graph.
// Statuses absent from a value list are unreachable from that key.
// Payment status is informational and never blocks a transition.
var transitionTable = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusApproved, StatusCancelled},
	StatusApproved:   {StatusPicking},
	StatusPicking:    {StatusPicked},
	StatusPicked:     {StatusLoaded},
	StatusLoaded:     {StatusDelivering},
	StatusDelivering: {StatusDelivered, StatusPartial},
	StatusDelivered:  {},
	StatusPartial:    {},
	StatusReturned:   {},
	StatusCancelled:  {},
}

// Validate checks that the Status is one of the closed set of known statuses.
// Values from external sources (API, database) must be validated before use.
func (s Status) Validate() error {
	if _, ok := transitionTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsCancellable reports whether an order in this status may be cancelled.
// Only pending and confirmed orders are cancellable.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsEditable reports whether line items and metadata may still be changed.
// Editing is allowed before fulfillment begins: pending, confirmed, approved.
func (s Status) IsEditable() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusApproved
}

// CanTransitionTo reports whether the transition table contains the edge s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionTable[s] {
		if next == target {
			return true
		}
	}
	return false
}

// PaymentStatus represents how much of an order's total has been paid.
// It is maintained by the payment reconciliation subsystem; this core reads it
// but never recomputes it.
type PaymentStatus string

const (
	// PaymentStatusUnpaid means no payment has been recorded.
	PaymentStatusUnpaid PaymentStatus = "unpaid"

	// PaymentStatusPartial means some but not all of the total has been paid.
	PaymentStatusPartial PaymentStatus = "partial"

	// PaymentStatusPaid means the total has been paid in full.
	PaymentStatusPaid PaymentStatus = "paid"
)

// Validate checks that the PaymentStatus is one of the closed set of known values.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", string(p)))
}

// String returns the payment status name. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}
