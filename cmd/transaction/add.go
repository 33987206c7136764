/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/constants"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/prompts"
	"github.com/hance08/keaview/internal/utils"
	"github.com/hance08/keaview/internal/validation"
)

type addFlags struct {
	description string
	amount      string
	date        string
}

func NewAddCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add <account>",
		Short: "Ask the server to add a transaction to an account",
		Long: `Ask the server to add a transaction to an account.

Without --amount the description, amount and date are prompted for.`,
		Example: `  # Interactive
  keaview transaction add Groceries

  # Non-interactive
  keaview transaction add Groceries -d "Farmers market" -a 23.40 --date 2025-06-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.form()
			if err != nil {
				return err
			}

			err = a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				acc, err := app.FindAccount(ctx.Store, args[0])
				if err != nil {
					return err
				}
				ctx.Selection.SelectAccount(acc)
				return ctx.Emitter.AddTransaction(form)
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Requested transaction '%s' (%s) on '%s'\n", form.Description, form.Amount, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&flags.amount, "amount", "a", "", "transaction amount")
	cmd.Flags().StringVar(&flags.date, "date", "", "transaction date (YYYY-MM-DD, default today)")

	return cmd
}

func (f *addFlags) form() (command.Form, error) {
	if f.amount == "" {
		return prompts.PromptTransactionForm()
	}

	if err := validation.ValidateAmount(f.amount); err != nil {
		return command.Form{}, err
	}
	amount, err := utils.NormalizeAmount(f.amount)
	if err != nil {
		return command.Form{}, err
	}

	date := f.date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	} else if err := validation.ValidateDate(date); err != nil {
		return command.Form{}, err
	}

	return command.Form{Description: f.description, Amount: amount, Date: date}, nil
}
