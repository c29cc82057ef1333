package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/habits-backend/internal/app"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "habits",
		Short: "Habit tracker API server and maintenance commands",
		Long: `habits serves the habit-tracking REST API. The same binary applies
database migrations and runs the periodic maintenance jobs: clearing expired
refresh tokens and granting extra habit or category quota to a user.`,
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCleanupTokensCmd(),
		newGrantQuotaCmd(),
	)
	return root
}

// withApp opens the application for the duration of a command.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
