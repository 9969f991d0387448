package modules

import (
	"github.com/fluxion-io/fluxion/modules/analytics"
	"github.com/fluxion-io/fluxion/modules/campaign"
	"github.com/fluxion-io/fluxion/modules/catalog"
	"github.com/fluxion-io/fluxion/modules/core"
	"github.com/fluxion-io/fluxion/modules/crm"
	"github.com/fluxion-io/fluxion/pkg/application"
)

// BuiltInModules returns the module set in registration order. Core must
// come first: the others resolve its services during registration.
func BuiltInModules() []application.Module {
	return []application.Module{
		core.NewModule(),
		crm.NewModule(),
		campaign.NewModule(),
		analytics.NewModule(),
		catalog.NewModule(),
	}
}
