package campaign

import (
	"github.com/gorilla/mux"

	"github.com/fluxion-io/fluxion/modules/campaign/domain"
	"github.com/fluxion-io/fluxion/modules/campaign/presentation/dtos"
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
	return "campaign"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	auth := coremiddleware.Authenticate(
		app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	)

	campaignService := crud.NewService(
		domain.CampaignSchema,
		crud.NewPgRepository(domain.CampaignSchema),
		app.EventPublisher(),
		crud.ServiceOptions{
			DefaultPageSize: conf.PageSize,
			MaxPageSize:     conf.MaxPageSize,
		},
	)
	app.RegisterServices(campaignService)

	app.RegisterControllers(
		crud.NewController(crud.ControllerConfig[domain.Campaign]{
			BasePath:     "/api/v1/campaigns",
			Service:      campaignService,
			NewCreateDTO: func() crud.CreateInput[domain.Campaign] { return &dtos.CampaignCreateDTO{} },
			NewUpdateDTO: func() crud.UpdateInput { return &dtos.CampaignUpdateDTO{} },
			Middleware:   []mux.MiddlewareFunc{auth},
		}),
	)
	return nil
}
