package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"
)

func TestNewBatchCancelOrdersCommand_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	orderIDs := []kernel.UUID{kernel.NewUUID()}
	actorID := kernel.NewUUID()

	cmd, err := commands.NewBatchCancelOrdersCommand(tenantID, orderIDs, "customer request", &actorID)
	require.NoError(t, err)
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, orderIDs, cmd.OrderIDs())
	assert.Equal(t, "customer request", cmd.Reason())
	assert.Equal(t, &actorID, cmd.CancelledBy())
}

func TestNewBatchCancelOrdersCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewBatchCancelOrdersCommand(
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, "", nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewBatchCancelOrdersCommand_EmptyOrderIDs(t *testing.T) {
	_, err := commands.NewBatchCancelOrdersCommand(kernel.NewUUID(), nil, "customer request", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestBatchCancelOrdersCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.BatchCancelOrdersCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrBatchCancelOrdersCommandIsNotConstructed)
}
