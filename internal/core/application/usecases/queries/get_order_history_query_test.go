package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/queries"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
)

func TestNewGetOrderHistoryQuery_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderHistoryQuery(tenantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, tenantID, query.TenantID())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderHistoryQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderHistoryQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderHistoryQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderHistoryQuery{}
	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
