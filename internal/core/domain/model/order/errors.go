package order

import (
	"errors"

	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

// Lifecycle errors. All of them are recoverable-by-caller: they describe a
// request the current order state does not permit, never a system fault.
// Handlers classify them with errors.Is and surface the matching machine code.
var (
	// ErrInvalidTransition is returned when the transition table has no edge
	// from the order's current status to the requested target.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOrderTerminal is returned for any transition attempted on a delivered
	// or cancelled order.
	ErrOrderTerminal = errors.New("order is in a terminal status")

	// ErrDriverRequired is returned when a transition to loaded finds no driver
	// on the order after applying any driver supplied with the call.
	ErrDriverRequired = errors.New("driver is required to load the order")

	// ErrNotCancellable is returned when cancellation is requested from a status
	// other than pending or confirmed.
	ErrNotCancellable = errors.New("order is not cancellable")

	// ErrOrderNotEditable is returned for edit attempts once fulfillment has begun.
	ErrOrderNotEditable = errors.New("order is not editable")

	// ErrItemNotFound is returned when an edit references an item that does not
	// belong to the order. The whole edit is rejected.
	ErrItemNotFound = errors.New("order item not found")

	// ErrDriverInvalid is returned when the assignment target is not a valid
	// driver of the tenant.
	ErrDriverInvalid = errors.New("driver is not valid for this tenant")
)

// Machine codes surfaced in batch result records and API error payloads.
const (
	CodeInvalidTransition = "invalid_transition"
	CodeOrderTerminal     = "order_terminal"
	CodeDriverRequired    = "driver_required"
	CodeNotCancellable    = "not_cancellable"
	CodeNotEditable       = "not_editable"
	CodeItemNotFound      = "item_not_found"
	CodeNotFound          = "not_found"
	CodeDriverInvalid     = "driver_invalid"
	CodeConflict          = "conflict"
	CodeInternal          = "internal_error"
)

// ErrorCode maps an error to its stable machine code.
// Persistence faults and anything unrecognized map to CodeInternal.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrOrderTerminal):
		return CodeOrderTerminal
	case errors.Is(err, ErrDriverRequired):
		return CodeDriverRequired
	case errors.Is(err, ErrNotCancellable):
		return CodeNotCancellable
	case errors.Is(err, ErrOrderNotEditable):
		return CodeNotEditable
	case errors.Is(err, ErrItemNotFound):
		return CodeItemNotFound
	case errors.Is(err, ErrDriverInvalid):
		return CodeDriverInvalid
	case errors.Is(err, errs.ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return CodeConflict
	default:
		return CodeInternal
	}
}
