/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/prompts"
	"github.com/hance08/keaview/internal/utils"
	"github.com/hance08/keaview/internal/validation"
)

func NewTransferCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <account> [amount]",
		Short: "Ask the server to move money into an account",
		Long: `Ask the server to move money into an account from the unallocated
pool.`,
		Example: `  keaview account transfer Groceries 120.50`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFund(cmd, a, timeout(), args, "transfer", func(ctx *session.Context, form command.Form) error {
				return ctx.Emitter.Transfer(form)
			})
		},
	}
}

func NewAllocateCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:     "allocate <account> [amount]",
		Short:   "Ask the server to set the allocation of an account",
		Example: `  keaview account allocate Rent 900`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFund(cmd, a, timeout(), args, "allocate", func(ctx *session.Context, form command.Form) error {
				return ctx.Emitter.Allocate(form)
			})
		},
	}
}

func runFund(cmd *cobra.Command, a *app.App, timeout time.Duration, args []string, verb string, emit func(*session.Context, command.Form) error) error {
	var amount string
	if len(args) == 2 {
		amount = args[1]
		if err := validation.ValidateAmount(amount); err != nil {
			return err
		}
	} else {
		var err error
		amount, err = prompts.PromptAmount("Amount:", validation.ValidateAmount)
		if err != nil {
			return err
		}
	}
	amount, err := utils.NormalizeAmount(amount)
	if err != nil {
		return err
	}

	err = a.WithSession(cmd.Context(), presenter(), timeout, func(ctx *session.Context) error {
		return onAccount(ctx, args[0], func(ctx *session.Context) error {
			return emit(ctx, command.Form{Amount: amount})
		})
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Requested %s of %s for '%s'\n", verb, amount, args[0])
	return nil
}
