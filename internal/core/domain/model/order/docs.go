// Package order contains the order aggregate and its lifecycle state machine.
//
// The aggregate root Order owns an ordered collection of Item entities and an
// append-only list of StatusHistoryEntry records. All mutation goes through the
// aggregate: Transition validates and applies a single status change, AssignDriver
// applies the driver side effect, and ApplyEdit recomputes monetary totals while
// the order is still editable.
//
// Status and PaymentStatus are closed variants; the legal status graph lives in
// the transition table in status.go and is the single source of truth for which
// transitions the state machine accepts.
package order
