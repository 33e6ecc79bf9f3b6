package queries_test

import (
	"context"
	"testing"
	"time"

	"cannacommerce/internal/adapters/out/postgres/orderrepo"
	"cannacommerce/internal/core/application/usecases/queries"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency in tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOpenOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOpenOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOpenOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) newOrder(poNumber string) *order.Order {
	buyer, err := kernel.NewGLN("0698420391022")
	suite.Require().NoError(err)
	seller, err := kernel.NewGLN("1234567890128")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), poNumber, buyer, seller, 100)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOpenOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyOpen() {
	ctx := context.Background()
	submittedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	draft := suite.newOrder("PO-2025-0001")

	submitted := suite.newOrder("PO-2025-0002")
	suite.Require().NoError(submitted.Submit(submittedAt))

	delivered := suite.newOrder("PO-2025-0003")
	suite.Require().NoError(delivered.Submit(submittedAt))
	suite.Require().NoError(delivered.Acknowledge("ACK-551", false))
	suite.Require().NoError(delivered.RecordShipment("ASN-9001", 100))
	suite.Require().NoError(delivered.Deliver("PO-2025-0003"))

	cancelled := suite.newOrder("PO-2025-0004")
	suite.Require().NoError(cancelled.Cancel("PO-2025-0004"))

	for _, aggregate := range []*order.Order{draft, submitted, delivered, cancelled} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	}

	query := queries.NewGetOpenOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("PO-2025-0001", result[0].PONumber)
	suite.Equal(order.Draft, result[0].Status)
	suite.Nil(result[0].SubmittedAt)
	suite.Equal("PO-2025-0002", result[1].PONumber)
	suite.Equal(order.Submitted, result[1].Status)
	suite.Require().NotNil(result[1].SubmittedAt)
	suite.True(result[1].SubmittedAt.Equal(submittedAt))
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_TracksShippedUnits() {
	ctx := context.Background()

	aggregate := suite.newOrder("PO-2025-0001")
	suite.Require().NoError(aggregate.Submit(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
	suite.Require().NoError(aggregate.Acknowledge("ACK-551", false))
	suite.Require().NoError(aggregate.RecordShipment("ASN-9001", 60))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query := queries.NewGetOpenOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Processing, result[0].Status)
	suite.Equal(order.FulfillmentPartial, result[0].Fulfillment)
	suite.Equal(100, result[0].OrderedUnits)
	suite.Equal(60, result[0].ShippedUnits)
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOpenOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOpenOrdersQuery constructor")
}

func TestGetOpenOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenOrdersQueryHandlerTestSuite))
}
