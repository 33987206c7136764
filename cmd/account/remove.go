/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui"
)

func NewRemoveCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <account>",
		Aliases: []string{"rm"},
		Short:   "Ask the server to remove an account",
		Long: `Ask the server to remove an account together with its transactions.
This action cannot be undone.`,
		Example: `  keaview account remove Groceries
  keaview account remove 2 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDestructive(cmd, a, timeout(), args[0], yes, "remove", func(ctx *session.Context) error {
				return ctx.Emitter.RemoveAccount()
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func NewCloseCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close <account>",
		Short: "Ask the server to close an account",
		Long: `Ask the server to close an account. The server moves whatever the
account still holds before removing it.`,
		Example: `  keaview account close Vacation`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDestructive(cmd, a, timeout(), args[0], yes, "close", func(ctx *session.Context) error {
				return ctx.Emitter.CloseAccount()
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func runDestructive(cmd *cobra.Command, a *app.App, timeout time.Duration, ref string, yes bool, verb string, emit func(*session.Context) error) error {
	s, stop, err := a.Attach(cmd.Context(), presenter(), timeout)
	if err != nil {
		return err
	}
	defer stop()

	// Resolve first so the prompt never blocks incoming events.
	var name, balance string
	err = s.Do(cmd.Context(), func(ctx *session.Context) error {
		acc, err := app.FindAccount(ctx.Store, ref)
		if err != nil {
			return err
		}
		name, balance = acc.Name, acc.BalanceText
		return nil
	})
	if err != nil {
		return err
	}

	if !yes {
		pterm.Warning.Printf("About to %s account '%s' (balance %s)\n", verb, name, balance)
		pterm.Warning.Println("This action cannot be undone!")
		ok, err := ui.Confirm(fmt.Sprintf("Do you want to %s this account?", verb))
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Cancelled")
			return nil
		}
	}

	// The account may have moved while the prompt was open; look it up again.
	err = s.Do(cmd.Context(), func(ctx *session.Context) error {
		return onAccount(ctx, name, emit)
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Requested %s of '%s'\n", verb, name)
	return nil
}
