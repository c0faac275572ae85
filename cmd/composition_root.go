package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/geoapi"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      ports.SelectionStore
	fetcher    services.LocationFetcher
	binder     *delivery.Binder
	logger     *slog.Logger
}

// NewCompositionRoot wires the application around an open database and
// session store. The geography client is built from configs.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	store ports.SelectionStore,
	logger *slog.Logger,
) (CompositionRoot, error) {
	timeout, err := configs.GeoAPIRequestTimeout()
	if err != nil {
		return CompositionRoot{}, err
	}
	provinceTTL, err := configs.ProvinceListTTL()
	if err != nil {
		return CompositionRoot{}, err
	}
	client := geoapi.NewProvinceCache(
		geoapi.NewClient(configs.GeoAPIURL(), timeout, logger),
		provinceTTL,
		logger,
	)

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		fetcher:    services.NewLocationFetcher(client),
		binder:     delivery.NewBinder(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateStartDeliveryFormCommandHandler() commands.StartDeliveryFormCommandHandler {
	return commands.NewStartDeliveryFormCommandHandler(c.store)
}

func (c *CompositionRoot) CreateChooseProvinceCommandHandler() commands.ChooseProvinceCommandHandler {
	return commands.NewChooseProvinceCommandHandler(c.store, c.fetcher, c.logger)
}

func (c *CompositionRoot) CreateChooseDistrictCommandHandler() commands.ChooseDistrictCommandHandler {
	return commands.NewChooseDistrictCommandHandler(c.store, c.fetcher, c.logger)
}

func (c *CompositionRoot) CreateChooseWardCommandHandler() commands.ChooseWardCommandHandler {
	return commands.NewChooseWardCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSubmitDeliveryFormCommandHandler() commands.SubmitDeliveryFormCommandHandler {
	var f commands.DeliveryAddressUoWFactory = FuncDeliveryAddressUoWFactory(func() commands.DeliveryAddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryFormCommandHandler(c.store, c.binder, f, c.logger)
}

func (c *CompositionRoot) CreateDiscardDeliveryFormCommandHandler() commands.DiscardDeliveryFormCommandHandler {
	return commands.NewDiscardDeliveryFormCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSweepExpiredFormsCommandHandler() commands.SweepExpiredFormsCommandHandler {
	return commands.NewSweepExpiredFormsCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGeographyQueryHandler() queries.GeographyQueryHandler {
	return queries.NewGeographyQueryHandler(c.fetcher)
}

func (c *CompositionRoot) CreateGetDeliveryFormQueryHandler() queries.GetDeliveryFormQueryHandler {
	return queries.NewGetDeliveryFormQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListDeliveryAddressesQueryHandler() queries.ListDeliveryAddressesQueryHandler {
	return queries.NewListDeliveryAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			StartDeliveryForm:   c.CreateStartDeliveryFormCommandHandler(),
			ChooseProvince:      c.CreateChooseProvinceCommandHandler(),
			ChooseDistrict:      c.CreateChooseDistrictCommandHandler(),
			ChooseWard:          c.CreateChooseWardCommandHandler(),
			SubmitDeliveryForm:  c.CreateSubmitDeliveryFormCommandHandler(),
			DiscardDeliveryForm: c.CreateDiscardDeliveryFormCommandHandler(),
		},
		httpin.QueryHandlers{
			Geography:             c.CreateGeographyQueryHandler(),
			GetDeliveryForm:       c.CreateGetDeliveryFormQueryHandler(),
			ListDeliveryAddresses: c.CreateListDeliveryAddressesQueryHandler(),
			RenderBirdCards:       queries.NewRenderBirdCardsQueryHandler(),
			GetProfileMenu:        queries.NewGetProfileMenuQueryHandler(),
			ListOrderStatuses:     queries.NewListOrderStatusesQueryHandler(),
		},
		c.configs.DefaultLocale(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	ttl, err := c.configs.SessionTTL()
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewSweepExpiredFormsCommand(ttl)
	if err != nil {
		return nil, err
	}

	sweep := jobs.NewFormSweepJob(c.CreateSweepExpiredFormsCommandHandler(), cmd, c.configs.FormSweepSchedule, c.logger)
	return jobs.NewJobManager().Add("form sweep", sweep), nil
}

type FuncDeliveryAddressUoWFactory func() commands.DeliveryAddressUoW

func (f FuncDeliveryAddressUoWFactory) Create() commands.DeliveryAddressUoW {
	return f()
}
