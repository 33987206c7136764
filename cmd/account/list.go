/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewListCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the server's accounts in order",
		Example: `  keaview account list`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				return views.NewAccountListView().Render(ctx.Store.Accounts(), nil)
			})
		},
	}
}
