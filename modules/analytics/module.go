package analytics

import (
	"github.com/gorilla/mux"

	"github.com/fluxion-io/fluxion/modules/analytics/domain"
	"github.com/fluxion-io/fluxion/modules/analytics/presentation/dtos"
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
	return "analytics"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	auth := coremiddleware.Authenticate(
		app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	)

	alertService := crud.NewService(
		domain.AlertSchema,
		crud.NewPgRepository(domain.AlertSchema),
		app.EventPublisher(),
		crud.ServiceOptions{
			DefaultPageSize: conf.PageSize,
			MaxPageSize:     conf.MaxPageSize,
		},
	)
	app.RegisterServices(alertService)

	app.RegisterControllers(
		crud.NewController(crud.ControllerConfig[domain.AnalyticsAlert]{
			BasePath:     "/api/v1/analytics/alerts",
			Service:      alertService,
			NewCreateDTO: func() crud.CreateInput[domain.AnalyticsAlert] { return &dtos.AlertCreateDTO{} },
			NewUpdateDTO: func() crud.UpdateInput { return &dtos.AlertUpdateDTO{} },
			Middleware:   []mux.MiddlewareFunc{auth},
		}),
	)
	return nil
}
