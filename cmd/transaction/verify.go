/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
)

func NewVerifyCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:     "verify <account> <transaction>",
		Aliases: []string{"check"},
		Short:   "Ask the server to mark a transaction as verified",
		Example: `  keaview transaction verify Groceries 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				return onTransaction(ctx, args[0], args[1], func(ctx *session.Context) error {
					return ctx.Emitter.VerifyTransaction()
				})
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("Requested verification")
			return nil
		},
	}
}
