package seed

import (
	"context"
	"errors"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/tenant"
	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/user"
	"github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/composables"
)

const (
	DefaultTenantSlug = "acme"
	DefaultAdminEmail = "admin@acme.test"
)

// DefaultTenant provisions a development tenant with one admin user. Running
// it twice is a no-op.
func DefaultTenant(ctx context.Context, app application.Application) error {
	tenantService := app.Service(services.TenantService{}).(*services.TenantService)
	userService := app.Service(services.UserService{}).(*services.UserService)

	return composables.InTx(ctx, func(txCtx context.Context) error {
		t, err := tenantService.GetBySlug(txCtx, DefaultTenantSlug)
		if err != nil {
			if !errors.Is(err, tenant.ErrNotFound) {
				return err
			}
			t, err = tenantService.Create(txCtx, "Acme Inc.", DefaultTenantSlug, "starter")
			if err != nil {
				return err
			}
			app.Logger().WithField("tenant_id", t.ID()).Info("seeded default tenant")
		}

		if _, err := userService.GetByEmail(txCtx, DefaultAdminEmail); err == nil {
			return nil
		} else if !errors.Is(err, user.ErrNotFound) {
			return err
		}

		u, apiKey, err := userService.Create(txCtx, t.ID(), DefaultAdminEmail, "Admin", "admin123")
		if err != nil {
			return err
		}
		app.Logger().WithFields(map[string]any{
			"user_id": u.ID(),
			"api_key": apiKey,
		}).Info("seeded default admin user")
		return nil
	})
}
