package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/habits-backend/internal/app"
	"github.com/heartmarshall/habits-backend/internal/service/auth"
)

func newCleanupTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Clear refresh tokens that have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				count, err := a.Auth.CleanupExpiredTokens(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d expired refresh tokens.\n", count)
				return nil
			})
		},
	}
}

func newGrantQuotaCmd() *cobra.Command {
	var input auth.GrantQuotaInput

	cmd := &cobra.Command{
		Use:   "grant-quota",
		Short: "Raise a user's habit and category limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				user, err := a.Auth.GrantQuota(cmd.Context(), input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %q now has %d habits and %d categories available.\n",
					user.Email, user.MaxHabit, user.CategoryMax)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "email of the user to grant quota to")
	cmd.Flags().IntVar(&input.Habits, "habits", 0, "additional habit slots")
	cmd.Flags().IntVar(&input.Categories, "categories", 0, "additional category slots")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
