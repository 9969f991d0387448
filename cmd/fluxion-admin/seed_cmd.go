package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/fluxion-io/fluxion/modules"
	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/configuration"
	"github.com/fluxion-io/fluxion/pkg/eventbus"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed development data (default tenant, admin user, plan catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			pool, err := pgxpool.New(cmd.Context(), conf.Database.ConnectionString())
			if err != nil {
				return err
			}
			defer pool.Close()

			app := application.New(&application.ApplicationOptions{
				Pool:     pool,
				EventBus: eventbus.NewEventPublisher(logger),
				Logger:   logger,
			})
			if err := application.Load(app, modules.BuiltInModules()...); err != nil {
				return err
			}

			ctx := composables.WithPool(cmd.Context(), pool)
			return app.Seed(ctx)
		},
	}
}
