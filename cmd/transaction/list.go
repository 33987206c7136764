/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewListCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:     "list <account>",
		Aliases: []string{"ls"},
		Short:   "List the transactions of an account",
		Example: `  keaview transaction list Groceries`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				acc, err := app.FindAccount(ctx.Store, args[0])
				if err != nil {
					return err
				}
				return views.NewTransactionListView().Render(acc, nil)
			})
		},
	}
}
