/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui"
)

func NewRemoveCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <account> <transaction>",
		Aliases: []string{"rm", "delete"},
		Short:   "Ask the server to remove a transaction",
		Long:    `Ask the server to remove a transaction. This action cannot be undone.`,
		Example: `  keaview transaction remove Groceries 0
  keaview transaction remove Groceries "Farmers market" -y`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stop, err := a.Attach(cmd.Context(), presenter(), timeout())
			if err != nil {
				return err
			}
			defer stop()

			var target *model.TransactionView
			var accountName, summary string
			err = s.Do(cmd.Context(), func(ctx *session.Context) error {
				acc, err := app.FindAccount(ctx.Store, args[0])
				if err != nil {
					return err
				}
				tx, err := app.FindTransaction(acc, args[1])
				if err != nil {
					return err
				}
				target, accountName = tx, acc.Name
				summary = tx.Date + "  " + tx.Description + "  " + tx.Amount
				return nil
			})
			if err != nil {
				return err
			}

			if !yes {
				pterm.Warning.Printf("About to remove from '%s':\n", accountName)
				pterm.DefaultTable.WithData(pterm.TableData{{summary}}).Render()
				pterm.Warning.Println("This action cannot be undone!")
				ok, err := ui.Confirm("Do you want to remove this transaction?")
				if err != nil {
					return err
				}
				if !ok {
					pterm.Info.Println("Removal cancelled")
					return nil
				}
			}

			// Selecting by identity fails quietly if the row vanished while
			// the prompt was open, and the emitter then refuses to send.
			err = s.Do(cmd.Context(), func(ctx *session.Context) error {
				if target.Removed() {
					return app.ErrTransactionNotFound
				}
				ctx.Selection.SelectAccount(target.Account())
				ctx.Selection.SelectTransaction(target)
				return ctx.Emitter.RemoveTransaction()
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("Requested transaction removal")
			ui.PrintSeparator()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
