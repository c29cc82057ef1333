package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habits-backend/internal/app"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		migrateSubCmd("up", "Apply all pending migrations", func(cmd *cobra.Command, m *postgres.Migrator) error {
			return m.Up(cmd.Context())
		}),
		migrateSubCmd("down", "Roll back the most recent migration", func(cmd *cobra.Command, m *postgres.Migrator) error {
			return m.Down(cmd.Context())
		}),
		migrateSubCmd("status", "List migrations and whether they are applied", func(cmd *cobra.Command, m *postgres.Migrator) error {
			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
			for _, s := range statuses {
				fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
			}
			return tw.Flush()
		}),
	)
	return cmd
}

func migrateSubCmd(use, short string, run func(cmd *cobra.Command, m *postgres.Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				m, err := a.Migrator()
				if err != nil {
					return err
				}
				defer m.Close()
				return run(cmd, m)
			})
		},
	}
}
