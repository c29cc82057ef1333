package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/habits-backend/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				return a.Run(cmd.Context())
			})
		},
	}
}
