package cmd

import (
	"log/slog"

	httpin "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.StatusChangePublisher
	columns    pipeline.Columns
	policy     services.TransitionPolicy
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.StatusChangePublisher,
	columns pipeline.Columns,
	logger *slog.Logger,
) (CompositionRoot, error) {
	policy, err := services.NewTransitionPolicyWithThreshold(configs.OverdueThreshold())
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		columns:    columns,
		policy:     policy,
		clock:      kernel.NewSystemClock(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Columns() pipeline.Columns {
	return c.columns
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	return commands.NewCreateServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeServiceOrderStatusCommandHandler() commands.ChangeServiceOrderStatusCommandHandler {
	return commands.NewChangeServiceOrderStatusCommandHandler(c.serviceOrderUoWFactory(), c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateMoveServiceOrderCommandHandler() commands.MoveServiceOrderCommandHandler {
	return commands.NewMoveServiceOrderCommandHandler(
		c.serviceOrderUoWFactory(),
		c.CreateChangeServiceOrderStatusCommandHandler(),
		c.columns,
		c.policy,
		c.clock,
	)
}

func (c *CompositionRoot) CreateApplyQuickActionCommandHandler() commands.ApplyQuickActionCommandHandler {
	return commands.NewApplyQuickActionCommandHandler(
		c.serviceOrderUoWFactory(),
		c.CreateChangeServiceOrderStatusCommandHandler(),
		c.columns,
		c.clock,
	)
}

func (c *CompositionRoot) CreateListServiceOrdersQueryHandler() queries.ListServiceOrdersQueryHandler {
	return queries.NewListServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceOrderQueryHandler() queries.GetServiceOrderQueryHandler {
	return queries.NewGetServiceOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPipelineBoardQueryHandler() queries.GetPipelineBoardQueryHandler {
	return queries.NewGetPipelineBoardQueryHandler(c.gormDB, c.columns, c.policy, c.clock)
}

func (c *CompositionRoot) CreateCountOverdueServiceOrdersQueryHandler() queries.CountOverdueServiceOrdersQueryHandler {
	return queries.NewCountOverdueServiceOrdersQueryHandler(c.gormDB, c.clock)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	create := c.CreateCreateServiceOrderCommandHandler()
	change := c.CreateChangeServiceOrderStatusCommandHandler()
	move := c.CreateMoveServiceOrderCommandHandler()
	action := c.CreateApplyQuickActionCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateServiceOrder:       &create,
		ChangeServiceOrderStatus: &change,
		MoveServiceOrder:         &move,
		ApplyQuickAction:         &action,
		ListServiceOrders:        c.CreateListServiceOrdersQueryHandler(),
		GetServiceOrder:          c.CreateGetServiceOrderQueryHandler(),
		GetPipelineBoard:         c.CreateGetPipelineBoardQueryHandler(),
	}, c.columns, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewOverdueReportJob(
		c.CreateCountOverdueServiceOrdersQueryHandler(),
		c.configs.OverdueThreshold(),
		c.configs.OverdueReportSpec,
		c.logger,
	))
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}
