package order_test

import (
	"testing"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusApproved,
		order.StatusPicking,
		order.StatusPicked,
		order.StatusLoaded,
		order.StatusDelivering,
		order.StatusDelivered,
		order.StatusPartial,
		order.StatusReturned,
		order.StatusCancelled,
	}
}

func legalEdges() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.StatusPending:    {order.StatusConfirmed, order.StatusCancelled},
		order.StatusConfirmed:  {order.StatusApproved, order.StatusCancelled},
		order.StatusApproved:   {order.StatusPicking},
		order.StatusPicking:    {order.StatusPicked},
		order.StatusPicked:     {order.StatusLoaded},
		order.StatusLoaded:     {order.StatusDelivering},
		order.StatusDelivering: {order.StatusDelivered, order.StatusPartial},
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every known status", func(t *testing.T) {
		for _, s := range allStatuses() {
			require.NoError(t, s.Validate(), "status %s", s)
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Status("shipped").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty status", func(t *testing.T) {
		require.Error(t, order.Status("").Validate())
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow exactly the edges of the transition table", func(t *testing.T) {
		edges := legalEdges()
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				expected := false
				for _, next := range edges[from] {
					if next == to {
						expected = true
					}
				}
				assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should have no outgoing edges from terminal statuses", func(t *testing.T) {
		for _, to := range allStatuses() {
			assert.False(t, order.StatusDelivered.CanTransitionTo(to))
			assert.False(t, order.StatusCancelled.CanTransitionTo(to))
		}
	})

	t.Run("should have no outgoing edges from partial and returned", func(t *testing.T) {
		for _, to := range allStatuses() {
			assert.False(t, order.StatusPartial.CanTransitionTo(to))
			assert.False(t, order.StatusReturned.CanTransitionTo(to))
		}
	})
}

func TestStatus_Predicates(t *testing.T) {
	t.Run("should mark only delivered and cancelled as terminal", func(t *testing.T) {
		for _, s := range allStatuses() {
			expected := s == order.StatusDelivered || s == order.StatusCancelled
			assert.Equal(t, expected, s.IsTerminal(), "status %s", s)
		}
	})

	t.Run("should mark only pending and confirmed as cancellable", func(t *testing.T) {
		for _, s := range allStatuses() {
			expected := s == order.StatusPending || s == order.StatusConfirmed
			assert.Equal(t, expected, s.IsCancellable(), "status %s", s)
		}
	})

	t.Run("should mark only pre-fulfillment statuses as editable", func(t *testing.T) {
		for _, s := range allStatuses() {
			expected := s == order.StatusPending || s == order.StatusConfirmed || s == order.StatusApproved
			assert.Equal(t, expected, s.IsEditable(), "status %s", s)
		}
	})
}

func TestPaymentStatus_Validate(t *testing.T) {
	t.Run("should accept known payment statuses", func(t *testing.T) {
		for _, p := range []order.PaymentStatus{
			order.PaymentStatusUnpaid,
			order.PaymentStatusPartial,
			order.PaymentStatusPaid,
		} {
			require.NoError(t, p.Validate(), "payment status %s", p)
		}
	})

	t.Run("should reject unknown payment status", func(t *testing.T) {
		err := order.PaymentStatus("refunded").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
