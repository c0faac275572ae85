package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/deliveryaddressrepo"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryaddressrepo.DeliveryAddressDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_addresses").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newAddress(receiver string) *delivery.Address {
	address, err := delivery.NewAddress(kernel.NewUUID(), delivery.Info{
		Receiver:    receiver,
		PhoneNumber: "0912345678",
		Province:    "Hà Nội",
		District:    "Cầu Giấy",
		Ward:        "Dịch Vọng",
		Address:     "12 Xuân Thủy",
	}, time.Now())
	suite.Require().NoError(err)
	return address
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.DeliveryAddressRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndTracks() {
	ctx := context.Background()
	uow := suite.factory.Create()
	address := suite.newAddress("An")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryAddressRepository().Add(ctx, address))
	suite.Require().NoError(uow.Commit(ctx))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().Len(gormUoW.TrackedIDs(), 1)
	suite.True(gormUoW.TrackedIDs()[0].IsEqual(address.ID()))

	got, err := suite.factory.Create().DeliveryAddressRepository().Get(ctx, address.ID())
	suite.Require().NoError(err)
	suite.Equal("An", got.Info().Receiver)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	address := suite.newAddress("Bình")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryAddressRepository().Add(ctx, address))
	suite.Require().NoError(uow.Rollback(ctx))

	gormUoW := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Empty(gormUoW.TrackedIDs())

	_, err := suite.factory.Create().DeliveryAddressRepository().Get(ctx, address.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_WritesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()
	address := suite.newAddress("Chi")

	suite.Require().NoError(uow.DeliveryAddressRepository().Add(ctx, address))

	_, err := suite.factory.Create().DeliveryAddressRepository().Get(ctx, address.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
