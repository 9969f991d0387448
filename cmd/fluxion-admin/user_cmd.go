package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/fluxion-io/fluxion/modules/core/infrastructure/persistence"
	"github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/configuration"
)

type userCreateOutput struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	APIKey   string `json:"api_key"`
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var (
		tenantSlug  string
		email       string
		displayName string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user and print its API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			pool, err := pgxpool.New(cmd.Context(), conf.Database.ConnectionString())
			if err != nil {
				return err
			}
			defer pool.Close()

			tenantService := services.NewTenantService(persistence.NewTenantRepository())
			userService := services.NewUserService(persistence.NewUserRepository())

			ctx := composables.WithPool(cmd.Context(), pool)
			var out userCreateOutput
			err = composables.InTx(ctx, func(txCtx context.Context) error {
				t, err := tenantService.GetBySlug(txCtx, tenantSlug)
				if err != nil {
					return fmt.Errorf("resolve tenant %q: %w", tenantSlug, err)
				}
				u, apiKey, err := userService.Create(txCtx, t.ID(), email, displayName, password)
				if err != nil {
					return err
				}
				out = userCreateOutput{
					UserID:   u.ID().String(),
					TenantID: t.ID().String(),
					Email:    u.Email(),
					APIKey:   apiKey,
				}
				return nil
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&tenantSlug, "tenant", "", "Tenant slug (required)")
	cmd.Flags().StringVar(&email, "email", "", "User email (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
