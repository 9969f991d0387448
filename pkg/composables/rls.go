package composables

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fluxion-io/fluxion/pkg/configuration"
)

// ApplyTenantRLS pins the acting tenant on the transaction via a local
// set_config, so row-level-security policies can reference
// app.current_tenant. No-op unless RLS enforcement is enabled.
func ApplyTenantRLS(ctx context.Context, tx pgx.Tx) error {
	if configuration.Use().RLSEnforce != "enforce" {
		return nil
	}
	tenantID, err := UseTenantID(ctx)
	if err != nil {
		// Bootstrap flows (migrations, seeds) carry no acting tenant; the
		// setting stays unset and their statements run with the
		// connection's own privileges.
		return nil
	}
	_, err = tx.Exec(ctx, "SELECT set_config('app.current_tenant', $1, true)", tenantID.String())
	if err != nil {
		return fmt.Errorf("failed to set rls tenant context: %w", err)
	}
	return nil
}
