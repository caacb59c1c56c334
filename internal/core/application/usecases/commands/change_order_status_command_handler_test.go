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
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := testOrder(t, tenantID, order.StatusPending, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, aggregate.ID(), order.StatusConfirmed, nil, "", nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("PublishStatusChanged", mock.Anything, mock.MatchedBy(func(e ports.StatusChangedEvent) bool {
		return e.ToStatus == order.StatusConfirmed && e.OrderID.IsEqual(aggregate.ID())
	})).Return(nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockDriverValidator), notifier, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewChangeOrderStatusCommandHandler(
		new(MockOrderUoWFactory), new(MockDriverValidator), new(MockNotificationDispatcher), discardLogger(),
	)
	_, err := h.Handle(t.Context(), commands.ChangeOrderStatusCommand{})
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidDriver(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, kernel.NewUUID(), order.StatusLoaded, nil, "", &driverID,
	)
	require.NoError(t, err)

	drivers := new(MockDriverValidator)
	drivers.On("IsDriver", mock.Anything, tenantID, driverID).Return(false, nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		new(MockOrderUoWFactory), drivers, new(MockNotificationDispatcher), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrDriverInvalid)
	drivers.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TransitionRejected(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := testOrder(t, tenantID, order.StatusPending, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, aggregate.ID(), order.StatusDelivered, nil, "", nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, new(MockDriverValidator), new(MockNotificationDispatcher), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusPending, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, orderID, order.StatusConfirmed, nil, "", nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, orderID).Return(nil, errors.New("record not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, new(MockDriverValidator), new(MockNotificationDispatcher), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_NotifyFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := testOrder(t, tenantID, order.StatusPending, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, aggregate.ID(), order.StatusConfirmed, nil, "", nil,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("PublishStatusChanged", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockDriverValidator), notifier, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status())
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AssignsDriverWithTransition(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	aggregate := testOrder(t, tenantID, order.StatusPicked, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, aggregate.ID(), order.StatusLoaded, nil, "", &driverID,
	)
	require.NoError(t, err)

	drivers := new(MockDriverValidator)
	drivers.On("IsDriver", mock.Anything, tenantID, driverID).Return(true, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, drivers, notifier, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusLoaded, updated.Status())
	require.NotNil(t, updated.Driver())
	assert.True(t, updated.Driver().IsEqual(driverID))
	drivers.AssertExpectations(t)
}
