package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/fluxion-io/fluxion/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			db, err := sql.Open("postgres", conf.Database.ConnectionString())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			if down {
				return goose.Down(db, conf.MigrationsDir)
			}
			return goose.Up(db, conf.MigrationsDir)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration")
	return cmd
}
