package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	ordershttp "github.com/ixasales-prog/IxaSales-sub002/internal/adapters/in/http"
	"github.com/ixasales-prog/IxaSales-sub002/internal/adapters/out/postgres"
	"github.com/ixasales-prog/IxaSales-sub002/internal/adapters/out/postgres/driverdir"
	"github.com/ixasales-prog/IxaSales-sub002/internal/adapters/out/redispub"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/queries"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
	"github.com/ixasales-prog/IxaSales-sub002/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	drivers    ports.DriverValidator
	notifier   *redispub.RedisNotificationDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		drivers:    driverdir.NewGormDriverValidator(gormDB),
		notifier: redispub.NewRedisNotificationDispatcher(
			config.RedisAddr,
			config.NotifyStatusChannel,
			config.NotifyOverdueChannel,
		),
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.drivers, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBatchChangeStatusCommandHandler() commands.BatchChangeStatusCommandHandler {
	return commands.NewBatchChangeStatusCommandHandler(c.orderUoWFactory(), c.drivers, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateBatchCancelOrdersCommandHandler() commands.BatchCancelOrdersCommandHandler {
	return commands.NewBatchCancelOrdersCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateBatchAssignDriverCommandHandler() commands.BatchAssignDriverCommandHandler {
	return commands.NewBatchAssignDriverCommandHandler(c.orderUoWFactory(), c.drivers)
}

func (c *CompositionRoot) CreateNotifyOverdueDeliveriesCommandHandler() commands.NotifyOverdueDeliveriesCommandHandler {
	return commands.NewNotifyOverdueDeliveriesCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *ordershttp.Server {
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	editOrder := c.CreateEditOrderCommandHandler()
	batchStatus := c.CreateBatchChangeStatusCommandHandler()
	batchCancel := c.CreateBatchCancelOrdersCommandHandler()
	batchAssign := c.CreateBatchAssignDriverCommandHandler()
	ordersByStatus := c.CreateGetOrdersByStatusQueryHandler()
	orderHistory := c.CreateGetOrderHistoryQueryHandler()

	return ordershttp.NewServer(
		changeStatus,
		editOrder,
		batchStatus,
		batchCancel,
		batchAssign,
		ordersByStatus,
		orderHistory,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateNotifyOverdueDeliveriesCommandHandler(), c.logger)
}

// Logger returns the process-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases externally held resources.
func (c *CompositionRoot) Close() error {
	return c.notifier.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
