package core

import (
	"github.com/fluxion-io/fluxion/modules/core/infrastructure/persistence"
	"github.com/fluxion-io/fluxion/modules/core/seed"
	"github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	tenantRepo := persistence.NewTenantRepository()
	userRepo := persistence.NewUserRepository()

	app.RegisterServices(
		services.NewTenantService(tenantRepo),
		services.NewUserService(userRepo),
		services.NewAuthService(userRepo, tenantRepo),
	)
	app.RegisterSeedFuncs(seed.DefaultTenant)
	return nil
}
