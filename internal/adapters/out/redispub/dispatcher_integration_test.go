package redispub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ixasales-prog/IxaSales-sub002/internal/adapters/out/redispub"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

const (
	statusChannel  = "orders.status-changed"
	overdueChannel = "orders.delivery-overdue"
)

// RedisDispatcherIntegrationTestSuite verifies the dispatcher against a real
// Redis instance: every publish must land on its channel as valid JSON.
type RedisDispatcherIntegrationTestSuite struct {
	suite.Suite
	container  testcontainers.Container
	addr       string
	dispatcher *redispub.RedisNotificationDispatcher
}

func (suite *RedisDispatcherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	suite.addr = host + ":" + port.Port()
	suite.dispatcher = redispub.NewRedisNotificationDispatcher(
		suite.addr, statusChannel, overdueChannel,
	)
}

func (suite *RedisDispatcherIntegrationTestSuite) TearDownSuite() {
	if suite.dispatcher != nil {
		suite.Require().NoError(suite.dispatcher.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// subscribe opens a subscription and blocks until Redis confirms it, so the
// following publish cannot race ahead of the subscriber.
func (suite *RedisDispatcherIntegrationTestSuite) subscribe(
	ctx context.Context,
	channel string,
) (*redis.Client, *redis.PubSub) {
	client := redis.NewClient(&redis.Options{Addr: suite.addr})
	sub := client.Subscribe(ctx, channel)

	_, err := sub.Receive(ctx)
	suite.Require().NoError(err)

	return client, sub
}

func (suite *RedisDispatcherIntegrationTestSuite) receive(
	ctx context.Context,
	sub *redis.PubSub,
) string {
	message, err := sub.ReceiveMessage(ctx)
	suite.Require().NoError(err)
	return message.Payload
}

func (suite *RedisDispatcherIntegrationTestSuite) TestPublishStatusChanged_DeliversJSON() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, sub := suite.subscribe(ctx, statusChannel)
	defer client.Close()
	defer sub.Close()

	previous := order.StatusApproved
	changedBy := kernel.NewUUID()
	event := ports.StatusChangedEvent{
		TenantID:    kernel.NewUUID(),
		OrderID:     kernel.NewUUID(),
		OrderNumber: "ORD-2024-0042",
		FromStatus:  &previous,
		ToStatus:    order.StatusPicking,
		ChangedBy:   &changedBy,
		OccurredAt:  time.Now().UTC(),
	}

	suite.Require().NoError(suite.dispatcher.PublishStatusChanged(ctx, event))

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(suite.receive(ctx, sub)), &decoded))

	suite.Equal(event.OrderID.String(), decoded["orderId"])
	suite.Equal(event.TenantID.String(), decoded["tenantId"])
	suite.Equal("ORD-2024-0042", decoded["orderNumber"])
	suite.Equal("approved", decoded["fromStatus"])
	suite.Equal("picking", decoded["toStatus"])
	suite.Equal(changedBy.String(), decoded["changedBy"])
}

func (suite *RedisDispatcherIntegrationTestSuite) TestPublishStatusChanged_OmitsAbsentActor() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, sub := suite.subscribe(ctx, statusChannel)
	defer client.Close()
	defer sub.Close()

	event := ports.StatusChangedEvent{
		TenantID:    kernel.NewUUID(),
		OrderID:     kernel.NewUUID(),
		OrderNumber: "ORD-2024-0043",
		ToStatus:    order.StatusApproved,
		OccurredAt:  time.Now().UTC(),
	}

	suite.Require().NoError(suite.dispatcher.PublishStatusChanged(ctx, event))

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(suite.receive(ctx, sub)), &decoded))

	suite.NotContains(decoded, "fromStatus")
	suite.NotContains(decoded, "changedBy")
	suite.Equal("approved", decoded["toStatus"])
}

func (suite *RedisDispatcherIntegrationTestSuite) TestPublishDeliveryOverdue_DeliversJSON() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, sub := suite.subscribe(ctx, overdueChannel)
	defer client.Close()
	defer sub.Close()

	driverID := kernel.NewUUID()
	event := ports.DeliveryOverdueEvent{
		TenantID:              kernel.NewUUID(),
		OrderID:               kernel.NewUUID(),
		OrderNumber:           "ORD-2024-0044",
		DriverID:              &driverID,
		RequestedDeliveryDate: time.Now().UTC().AddDate(0, 0, -2),
		DetectedAt:            time.Now().UTC(),
	}

	suite.Require().NoError(suite.dispatcher.PublishDeliveryOverdue(ctx, event))

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(suite.receive(ctx, sub)), &decoded))

	suite.Equal(event.OrderID.String(), decoded["orderId"])
	suite.Equal("ORD-2024-0044", decoded["orderNumber"])
	suite.Equal(driverID.String(), decoded["driverId"])
}

func TestRedisDispatcherIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisDispatcherIntegrationTestSuite))
}
