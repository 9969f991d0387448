package seed

import (
	"context"

	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/composables"
)

// Plans provisions the subscription catalog. The catalog is read-only
// through the public surface, so seeding is its only write path.
func Plans(ctx context.Context, app application.Application) error {
	plans := []struct {
		code         string
		name         string
		priceCents   int64
		contactLimit int
	}{
		{"starter", "Starter", 0, 100},
		{"growth", "Growth", 4900, 10000},
		{"scale", "Scale", 19900, 1000000},
	}
	return composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		for _, p := range plans {
			_, err := tx.Exec(txCtx, `
INSERT INTO plans (code, name, price_cents, contact_limit)
VALUES ($1, $2, $3, $4)
ON CONFLICT (code) DO NOTHING`,
				p.code, p.name, p.priceCents, p.contactLimit,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
