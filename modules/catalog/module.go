package catalog

import (
	"github.com/gorilla/mux"

	"github.com/fluxion-io/fluxion/modules/catalog/domain"
	"github.com/fluxion-io/fluxion/modules/catalog/seed"
	coremiddleware "github.com/fluxion-io/fluxion/modules/core/presentation/middleware"
	coreservices "github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/configuration"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "catalog"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	auth := coremiddleware.Authenticate(
		app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	)

	planService := crud.NewService(
		domain.PlanSchema,
		crud.NewPgRepository(domain.PlanSchema),
		app.EventPublisher(),
		crud.ServiceOptions{
			DefaultPageSize: conf.PageSize,
			MaxPageSize:     conf.MaxPageSize,
		},
	)
	app.RegisterServices(planService)

	app.RegisterControllers(
		crud.NewController(crud.ControllerConfig[domain.Plan]{
			BasePath:   "/api/v1/plans",
			Service:    planService,
			Middleware: []mux.MiddlewareFunc{auth},
			ReadOnly:   true,
		}),
	)
	app.RegisterSeedFuncs(seed.Plans)
	return nil
}
