package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

func TestBatchAssignDriverCommandHandler_Handle_MixedOutcomes(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	assignable := testOrder(t, tenantID, order.StatusApproved, nil)
	terminal := testOrder(t, tenantID, order.StatusCancelled, nil)
	orderIDs := []kernel.UUID{assignable.ID(), terminal.ID()}

	cmd, err := commands.NewBatchAssignDriverCommand(tenantID, orderIDs, driverID)
	require.NoError(t, err)

	drivers := new(MockDriverValidator)
	drivers.On("IsDriver", mock.Anything, tenantID, driverID).Return(true, nil).Once()

	factory, _, repo := batchMocks()
	repo.On("GetByIDs", mock.Anything, tenantID, orderIDs).
		Return([]*order.Order{assignable, terminal}, nil).Once()
	repo.On("Update", mock.Anything, assignable).Return(nil).Once()

	h := commands.NewBatchAssignDriverCommandHandler(factory, drivers)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	assert.True(t, result.Results[0].Success)
	require.NotNil(t, assignable.Driver())
	assert.True(t, assignable.Driver().IsEqual(driverID))
	assert.Equal(t, order.StatusApproved, assignable.Status(), "assignment must not change status")

	assert.False(t, result.Results[1].Success)
	assert.Equal(t, order.CodeOrderTerminal, result.Results[1].Error)
	assert.Nil(t, terminal.Driver())

	drivers.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestBatchAssignDriverCommandHandler_Handle_InvalidDriverRecordedPerOrder(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	approved := testOrder(t, tenantID, order.StatusApproved, nil)
	orderIDs := []kernel.UUID{approved.ID()}

	cmd, err := commands.NewBatchAssignDriverCommand(tenantID, orderIDs, driverID)
	require.NoError(t, err)

	drivers := new(MockDriverValidator)
	drivers.On("IsDriver", mock.Anything, tenantID, driverID).Return(false, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("GetByIDs", mock.Anything, tenantID, orderIDs).
		Return([]*order.Order{approved}, nil).Once()

	// No Begin/Commit/Rollback expectations: a rejected driver must never
	// open a transaction.
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewBatchAssignDriverCommandHandler(factory, drivers)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, order.CodeDriverInvalid, result.Results[0].Error)
	assert.Nil(t, approved.Driver())

	drivers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBatchAssignDriverCommandHandler_Handle_ValidatorError(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewBatchAssignDriverCommand(tenantID, []kernel.UUID{kernel.NewUUID()}, driverID)
	require.NoError(t, err)

	drivers := new(MockDriverValidator)
	drivers.On("IsDriver", mock.Anything, tenantID, driverID).
		Return(false, errors.New("directory unavailable")).Once()

	h := commands.NewBatchAssignDriverCommandHandler(new(MockOrderUoWFactory), drivers)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.NotErrorIs(t, err, order.ErrDriverInvalid)
}

func TestBatchAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewBatchAssignDriverCommandHandler(new(MockOrderUoWFactory), new(MockDriverValidator))
	_, err := h.Handle(t.Context(), commands.BatchAssignDriverCommand{})
	require.ErrorIs(t, err, commands.ErrBatchAssignDriverCommandIsNotConstructed)
}
