package order

import (
	"time"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
)

// StatusHistoryEntry is an immutable audit record of one accepted transition.
// Entries are append-only: once created they are never mutated or deleted.
// The initial entry of an order has a nil fromStatus; system-initiated changes
// have a nil changedBy.
type StatusHistoryEntry struct {
	id         kernel.UUID
	fromStatus *Status
	toStatus   Status
	changedBy  *kernel.UUID
	notes      string
	createdAt  time.Time
}

// newStatusHistoryEntry creates an audit record for a transition accepted at createdAt.
// Only the aggregate appends history; there is no public constructor.
func newStatusHistoryEntry(
	fromStatus *Status,
	toStatus Status,
	changedBy *kernel.UUID,
	notes string,
	createdAt time.Time,
) *StatusHistoryEntry {
	return &StatusHistoryEntry{
		id:         kernel.NewUUID(),
		fromStatus: fromStatus,
		toStatus:   toStatus,
		changedBy:  changedBy,
		notes:      notes,
		createdAt:  createdAt,
	}
}

// RestoreStatusHistoryEntry reconstructs a persisted audit record.
// Used by the persistence adapter only.
func RestoreStatusHistoryEntry(
	id kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	changedBy *kernel.UUID,
	notes string,
	createdAt time.Time,
) (*StatusHistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}

	return &StatusHistoryEntry{
		id:         id,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		changedBy:  changedBy,
		notes:      notes,
		createdAt:  createdAt,
	}, nil
}

// ID returns the entry's unique identifier.
func (e *StatusHistoryEntry) ID() kernel.UUID {
	return e.id
}

// FromStatus returns the status before the transition, nil for the initial entry.
func (e *StatusHistoryEntry) FromStatus() *Status {
	return e.fromStatus
}

// ToStatus returns the status after the transition.
func (e *StatusHistoryEntry) ToStatus() Status {
	return e.toStatus
}

// ChangedBy returns the acting identity, nil for system-initiated changes.
func (e *StatusHistoryEntry) ChangedBy() *kernel.UUID {
	return e.changedBy
}

// Notes returns the free-text notes recorded with the transition.
func (e *StatusHistoryEntry) Notes() string {
	return e.notes
}

// CreatedAt returns when the transition was accepted.
func (e *StatusHistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}
